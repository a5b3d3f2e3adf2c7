// Package render decides what a message bubble shows for a given viewer.
package render

import (
	"fmt"
	"time"

	"gomarket/internal/chat/message"
)

// PlaceholderText replaces the body of a message whose payload is missing
// or malformed.
const PlaceholderText = "Data missing"

type RenderData struct {
	MessageID string
	Kind      message.Kind
	Outgoing  bool
	// ShowAvatar is false for system notices, which render centered.
	ShowAvatar  bool
	Placeholder string
	Body        string
	Timestamp   time.Time
	Read        bool

	Attachments []message.Attachment
	Offer       *OfferView
	Milestone   *MilestoneView
	SystemEvent *SystemEventView
	// ShowOfferActions enables accept/decline; only the recipient gets them.
	ShowOfferActions bool
}

type OfferView struct {
	Title        string
	Description  string
	Price        string
	DeliveryTime string
	ContractID   string
}

type MilestoneView struct {
	Title        string
	Amount       string
	ContractLink string
}

type SystemEventView struct {
	Text        string
	ButtonLabel string
	ButtonLink  string
}

// Degraded reports whether the bubble shows the placeholder.
func (d RenderData) Degraded() bool {
	return d.Placeholder != ""
}

// For renders m as seen by viewerID.
func For(m message.Message, viewerID string) RenderData {
	return message.Visit[RenderData](m, renderer{viewerID: viewerID})
}

// All renders a feed in order.
func All(msgs []message.Message, viewerID string) []RenderData {
	out := make([]RenderData, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, For(m, viewerID))
	}
	return out
}

type renderer struct {
	viewerID string
}

func (r renderer) base(m message.Message) RenderData {
	return RenderData{
		MessageID:  m.ID,
		Kind:       m.Kind,
		Outgoing:   m.SenderID == r.viewerID,
		ShowAvatar: true,
		Body:       m.Content,
		Timestamp:  m.CreatedAt,
		Read:       m.IsRead(),
	}
}

func (r renderer) VisitText(m message.Message) RenderData {
	return r.base(m)
}

func (r renderer) VisitImage(m message.Message, p message.ImagePayload) RenderData {
	d := r.base(m)
	d.Attachments = append([]message.Attachment(nil), p.Attachments...)
	return d
}

func (r renderer) VisitOffer(m message.Message, p message.OfferPayload) RenderData {
	d := r.base(m)
	d.Offer = &OfferView{
		Title:        p.Title,
		Description:  p.Description,
		Price:        formatAmount(p.Price, p.Currency),
		DeliveryTime: p.DeliveryTime,
		ContractID:   p.ContractID,
	}
	d.ShowOfferActions = !d.Outgoing
	return d
}

func (r renderer) VisitMilestone(m message.Message, p message.MilestonePayload) RenderData {
	d := r.base(m)
	d.Milestone = &MilestoneView{
		Title:        p.Title,
		Amount:       formatAmount(p.Amount, p.Currency),
		ContractLink: p.ContractLink,
	}
	return d
}

func (r renderer) VisitSystemEvent(m message.Message, p message.SystemEventPayload) RenderData {
	d := r.base(m)
	d.ShowAvatar = false
	d.Outgoing = false
	d.Body = p.Text
	d.SystemEvent = &SystemEventView{
		Text:        p.Text,
		ButtonLabel: p.ButtonLabel,
		ButtonLink:  p.ButtonLink,
	}
	return d
}

func (r renderer) VisitMissing(m message.Message, p message.MissingPayload) RenderData {
	d := r.base(m)
	d.Placeholder = PlaceholderText
	if m.Kind == message.KindSystemEvent {
		d.ShowAvatar = false
		d.Outgoing = false
	}
	return d
}

func formatAmount(v *float64, currency string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f %s", *v, currency)
}
