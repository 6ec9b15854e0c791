package mail

import (
	"context"
	"fmt"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
)

// GreetingEmail thanks a visitor who said hello. No admin copy.
type GreetingEmail struct{ envelope }

// Type implements Email.
func (m *GreetingEmail) Type() entity.EmailType { return entity.EmailTypeGreetings }

func (m *GreetingEmail) phrasing() string {
	name := m.opts.Name

	return pick(m.deps.Intn, []string{
		fmt.Sprintf("Hello %s, thank you for your message. I hope all is well on your end.", name),
		fmt.Sprintf("Hi %s, I appreciate your greetings. Looking forward to hearing more from you.", name),
		fmt.Sprintf("Greetings %s! Thank you for reaching out. I hope you're doing well.", name),
		fmt.Sprintf("Hello %s, it's great to hear from you. Wishing you a pleasant %s.", name, timeOfDay(m.opts.TimeZone, m.deps.Now())),
		fmt.Sprintf("Hi %s, thank you for getting in touch. Feel free to let me know if there's anything I can help with.", name),
	})
}

// Send implements Email.
func (m *GreetingEmail) Send(ctx context.Context) error {
	body, err := m.customerCard("Thank you for your message", m.phrasing())
	if err != nil {
		return err
	}

	return m.deliver(ctx, outgoing{
		to:      m.opts.Email,
		subject: fmt.Sprintf("Grateful for your Message, %s let's explore more together!", m.opts.Name),
		body:    body,
	})
}

// OpinionEmail thanks a visitor for feedback and forwards it to the admin mailbox.
type OpinionEmail struct{ envelope }

// Type implements Email.
func (m *OpinionEmail) Type() entity.EmailType { return entity.EmailTypeOpinion }

func (m *OpinionEmail) phrasing() string {
	name := m.opts.Name

	return pick(m.deps.Intn, []string{
		fmt.Sprintf("Hello %s, thank you so much for sharing your opinion. Your feedback is incredibly valuable and helps me improve continuously.", name),
		fmt.Sprintf("Hi %s, I appreciate you taking the time to provide your thoughts. Every piece of feedback contributes to my growth as a writer and engineer.", name),
		fmt.Sprintf("Greetings %s, your insights are greatly appreciated. They allow me to reflect and improve both my writing and programming skills. Thank you!", name),
		fmt.Sprintf("Hello %s, I truly value your feedback. It's through opinions like yours that I can continue to evolve and deliver better content and solutions.", name),
		fmt.Sprintf("Hi %s, thank you for your thoughtful input. I'm always striving to improve, and your feedback plays a key role in helping me become a better developer and creator.", name),
	})
}

// Send implements Email.
func (m *OpinionEmail) Send(ctx context.Context) error {
	customerBody, err := m.customerCard("Thank you for your feedback", m.phrasing())
	if err != nil {
		return err
	}

	adminBody, err := render(layoutAdmin, adminData{
		Title: "Nuevo comentario",
		Intro: fmt.Sprintf("El usuario %s ha dejado un comentario en tu sitio web.", m.opts.Name),
		Fields: []adminField{
			{Label: "Email", Value: m.opts.Email, Href: "mailto:" + m.opts.Email},
			{Label: "Comentario", Value: m.opts.Message},
		},
		InboxLink:  m.inboxLink(),
		InboxLabel: "Ver comentario",
		Year:       m.year(),
	})
	if err != nil {
		return err
	}

	return m.deliverPair(ctx,
		outgoing{
			to:      m.opts.Email,
			subject: fmt.Sprintf("Your Feedback Matters, %s – Thanks for Helping Me Grow!", m.opts.Name),
			body:    customerBody,
		},
		outgoing{
			to:      m.deps.AdminEmail,
			subject: fmt.Sprintf("You have received an opinion from %s - Take a look!", m.opts.Name),
			body:    adminBody,
		},
	)
}

// WorkEmail answers a job inquiry and notifies the work mailbox.
type WorkEmail struct{ envelope }

// Type implements Email.
func (m *WorkEmail) Type() entity.EmailType { return entity.EmailTypeWork }

func (m *WorkEmail) phrasing() string {
	name := m.opts.Name

	return pick(m.deps.Intn, []string{
		fmt.Sprintf("Hi %s, thank you so much for considering me for your project. I'm confident that my skills and experience can contribute to making it a success. I'll get back to you as soon as possible!", name),
		fmt.Sprintf("Hello %s, I greatly appreciate your message and your interest in working together. I'm excited about the opportunity and I'm confident that I can help achieve great results. I'll be in touch soon!", name),
		fmt.Sprintf("Hi %s, thanks for reaching out! Your proposal sounds interesting, and I'm eager to explore how we can work together to make your project successful. I'll respond shortly with more details.", name),
		fmt.Sprintf("Hello %s, I'm thrilled by the opportunity you've presented. I truly believe I can add value to your project or team and am excited to discuss further. I'll reply soon with more information.", name),
		fmt.Sprintf("Hi %s, I appreciate your interest in my services! I'm confident I can be the right fit to help your project succeed. I'll be reviewing your message and will respond shortly.", name),
		fmt.Sprintf("Good %s, %s! Thank you for considering me for this opportunity. I'm excited to explore how I can help make your project a success. I'll get back to you shortly!", timeOfDay(m.opts.TimeZone, m.deps.Now()), name),
	})
}

// Send implements Email.
func (m *WorkEmail) Send(ctx context.Context) error {
	customerBody, err := m.customerCard("Thank you for reaching out", m.phrasing())
	if err != nil {
		return err
	}

	adminBody, err := render(layoutAdmin, adminData{
		Title: "Nueva oportunidad de trabajo",
		Intro: fmt.Sprintf("%s está interesado en colaborar contigo, ponte en contacto lo antes posible.", m.opts.Name),
		Fields: []adminField{
			{Label: "Email", Value: m.opts.Email, Href: "mailto:" + m.opts.Email},
			{Label: "Zona horaria", Value: m.opts.TimeZone},
			{Label: "Mensaje", Value: m.opts.Message},
		},
		InboxLink:  m.inboxLink(),
		InboxLabel: "Ver propuesta laboral",
		Year:       m.year(),
	})
	if err != nil {
		return err
	}

	return m.deliverPair(ctx,
		outgoing{
			to:      m.opts.Email,
			subject: fmt.Sprintf("Thank you for reaching out, %s! I'm excited to discuss your project.", m.opts.Name),
			body:    customerBody,
		},
		outgoing{
			to:      m.deps.WorkEmail,
			subject: fmt.Sprintf("Nueva consulta de trabajo de %s: Oportunidad de colaboración potencial", m.opts.Name),
			body:    adminBody,
		},
	)
}

// ErrorReportEmail thanks the reporter, pages the admin and then emails the report.
type ErrorReportEmail struct{ envelope }

// Type implements Email.
func (m *ErrorReportEmail) Type() entity.EmailType { return entity.EmailTypeErrorReport }

func (m *ErrorReportEmail) alertText() string {
	return fmt.Sprintf("Hola, se ha detectado un nuevo reporte de error a las %s.\n"+
		"Por favor, revísalo lo antes posible para asegurarte de que todo esté funcionando correctamente.\n"+
		"Este es el link del reporte: %s\n"+
		"El usuario %s, con zona horaria %s, fue quien generó el reporte.\n"+
		"Este es el mensaje de error: %s",
		serverTime(m.deps.Now()), m.inboxLink(), m.opts.Name, m.opts.TimeZone, m.opts.Message)
}

// Send implements Email.
func (m *ErrorReportEmail) Send(ctx context.Context) error {
	customerBody, err := m.customerCard("Thank you for reporting the issue",
		fmt.Sprintf("Hello %s, thank you for reporting the issue. I appreciate your feedback and will work to resolve the problem as soon as possible.", m.opts.Name))
	if err != nil {
		return err
	}

	err = m.deliver(ctx, outgoing{
		to:      m.opts.Email,
		subject: fmt.Sprintf("Thank you for reporting the issue, %s.", m.opts.Name),
		body:    customerBody,
	})
	if err != nil {
		return err
	}

	m.alert(ctx, m.alertText())

	adminBody, err := render(layoutAdmin, adminData{
		Title: "Notificación de Reporte de Error",
		Intro: fmt.Sprintf("El usuario %s ha enviado un nuevo reporte de error.", m.opts.Name),
		Fields: []adminField{
			{Label: "Email", Value: m.opts.Email, Href: "mailto:" + m.opts.Email},
			{Label: "Zona Horaria", Value: m.opts.TimeZone},
			{Label: "Mensaje de Error", Value: m.opts.Message},
		},
		InboxLink:  m.inboxLink(),
		InboxLabel: "Ver Reporte",
		Year:       m.year(),
	})
	if err != nil {
		return err
	}

	err = m.deliver(ctx, outgoing{
		to:      m.deps.AdminEmail,
		subject: fmt.Sprintf("New Error Report from %s", m.opts.Name),
		body:    adminBody,
	})

	return errors.WithMessage(err, "admin error report")
}
