package service

// QRCodeService renders links as scannable QR codes.
type QRCodeService interface {
	// LinkPNG encodes link as a PNG image.
	LinkPNG(link string) ([]byte, error)
}
