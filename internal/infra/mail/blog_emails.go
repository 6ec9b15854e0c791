package mail

import (
	"context"
	"fmt"

	"portfolio/internal/domain/entity"
)

// ProposalEmail thanks a blog reader for a topic proposal.
type ProposalEmail struct{ envelope }

// Type implements Email.
func (m *ProposalEmail) Type() entity.EmailType { return entity.EmailTypeProposal }

func (m *ProposalEmail) phrasing() string {
	name := m.opts.Name

	return pick(m.deps.Intn, []string{
		fmt.Sprintf("Hello %s, thank you for your detailed proposal. I truly appreciate the time and effort you put into it. I will review it thoroughly and get back to you soon to discuss it further. Your suggestions for topics are always welcome, and I look forward to collaborating with you.", name),
		fmt.Sprintf("Hi %s, I received your proposal and I am excited about the possibilities it presents. Thank you for your thoughtful input. I will be in touch shortly to discuss your ideas in more detail. Your contributions are invaluable, and I am eager to hear more from you.", name),
		fmt.Sprintf("Greetings %s! Thank you for submitting your proposal. I am eager to delve into it and explore the potential it holds. I will reach out to you soon to discuss it further. Your ideas for new topics are always appreciated, and I look forward to our collaboration.", name),
		fmt.Sprintf("Hello %s, it's wonderful to receive your proposal. I appreciate your initiative and the insights you've shared. I will review your proposal and contact you soon to discuss it in depth. Your suggestions for topics are always welcome, and I am excited to hear more from you.", name),
		fmt.Sprintf("Hi %s, thank you for your comprehensive proposal. I am looking forward to discussing it with you soon. Your ideas for new topics are always welcome, and I will be in touch shortly to explore your suggestions further. Your input is highly valued, and I am excited about the potential collaboration.", name),
	})
}

// Send implements Email.
func (m *ProposalEmail) Send(ctx context.Context) error {
	customerBody, err := render(layoutBlog, cardData{
		Title:   "Thank you for your proposal",
		Message: m.phrasing(),
		Reason:  "You are receiving this email because you have sent a proposal to Richard Dev.",
		Year:    m.year(),
	})
	if err != nil {
		return err
	}

	adminBody, err := render(layoutAdmin, adminData{
		Title: "Notificación de Propuesta",
		Intro: fmt.Sprintf("El usuario %s ha enviado una nueva propuesta.", m.opts.Name),
		Fields: []adminField{
			{Label: "Email", Value: m.opts.Email, Href: "mailto:" + m.opts.Email},
			{Label: "Zona Horaria", Value: m.opts.TimeZone},
			{Label: "Propuesta", Value: m.opts.Message},
		},
		InboxLink:  m.inboxLink(),
		InboxLabel: "Ver Propuesta",
		Year:       m.year(),
	})
	if err != nil {
		return err
	}

	return m.deliverPair(ctx,
		outgoing{to: m.opts.Email, subject: fmt.Sprintf("Thank you for your proposal, %s!", m.opts.Name), body: customerBody},
		outgoing{to: m.deps.AdminEmail, subject: fmt.Sprintf("New Proposal from %s", m.opts.Name), body: adminBody},
	)
}

// ReviewEmail thanks a reader for reviewing an article and shows the article to the admin.
type ReviewEmail struct{ envelope }

// Type implements Email.
func (m *ReviewEmail) Type() entity.EmailType { return entity.EmailTypeReview }

func (m *ReviewEmail) phrasing() string {
	name, title := m.opts.Name, m.opts.ArticleTitle

	return pick(m.deps.Intn, []string{
		fmt.Sprintf("Hello %s, thank you for your detailed review of the article %q. I truly appreciate the time and effort you put into it. I will review it thoroughly and get back to you soon to discuss it further.", name, title),
		fmt.Sprintf("Hi %s, I received your review of the article %q and I am excited about the possibilities it presents. Thank you for your thoughtful input. I will be in touch shortly to discuss your ideas in more detail.", name, title),
		fmt.Sprintf("Greetings %s! Thank you for submitting your review of the article %q. I am eager to delve into it and explore the potential it holds. I will reach out to you soon to discuss it further.", name, title),
		fmt.Sprintf("Hello %s, it's wonderful to receive your review of the article %q. I appreciate your initiative and the insights you've shared. I will go through it and contact you soon to discuss it in depth.", name, title),
		fmt.Sprintf("Hi %s, thank you for your comprehensive review of the article %q. I am looking forward to discussing it with you soon. Your input is highly valued, and I am excited about the potential collaboration.", name, title),
	})
}

// Send implements Email.
func (m *ReviewEmail) Send(ctx context.Context) error {
	customerBody, err := render(layoutBlog, cardData{
		Title:     fmt.Sprintf("%s thank you for your review", m.opts.Name),
		Message:   m.phrasing(),
		Link:      m.opts.ArticleLink,
		LinkLabel: "Read the article again",
		Reason:    fmt.Sprintf("You are receiving this email because you have reviewed the article %s on the Ricardo Dev blog.", m.opts.ArticleTitle),
		Year:      m.year(),
	})
	if err != nil {
		return err
	}

	adminBody, err := render(layoutAdmin, adminData{
		Title: "Notificación de Reseña",
		Intro: fmt.Sprintf("El usuario %s ha hecho una reseña.", m.opts.Name),
		Fields: []adminField{
			{Label: "Email del usuario", Value: m.opts.Email, Href: "mailto:" + m.opts.Email},
			{Label: "Zona Horaria", Value: m.opts.TimeZone},
			{Label: "Reseña", Value: m.opts.Message},
		},
		Article: &articleCard{
			Title: m.opts.ArticleTitle,
			Link:  m.opts.ArticleLink,
			Image: m.opts.ArticleImage,
		},
		InboxLink:  m.inboxLink(),
		InboxLabel: "Ver Reseña",
		Year:       m.year(),
	})
	if err != nil {
		return err
	}

	return m.deliverPair(ctx,
		outgoing{to: m.opts.Email, subject: fmt.Sprintf("Thank you for your review, %s!", m.opts.Name), body: customerBody},
		outgoing{to: m.deps.AdminEmail, subject: fmt.Sprintf("New Review from %s", m.opts.Name), body: adminBody},
	)
}
