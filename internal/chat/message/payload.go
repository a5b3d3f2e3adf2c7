package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Payload is the kind-specific part of a message. The set of
// implementations is closed to this package.
type Payload interface {
	Kind() Kind
	isPayload()
}

// Attachment is produced once by the uploader and never changes.
type Attachment struct {
	Name     string `json:"name" validate:"required"`
	ByteSize int64  `json:"byte_size" validate:"gte=0"`
	URL      string `json:"url" validate:"required,url"`
}

type TextPayload struct{}

type ImagePayload struct {
	Attachments []Attachment `json:"attachments" validate:"required,min=1,dive"`
}

type OfferPayload struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Currency     string   `json:"currency" validate:"required,len=3"`
	DeliveryTime string   `json:"delivery_time,omitempty"`
	ContractID   string   `json:"contract_id" validate:"required"`
}

type MilestonePayload struct {
	Title        string   `json:"title" validate:"required"`
	Amount       *float64 `json:"amount" validate:"required,gte=0"`
	Currency     string   `json:"currency" validate:"required,len=3"`
	ContractLink string   `json:"contract_link,omitempty"`
}

type SystemEventPayload struct {
	Text        string `json:"text" validate:"required"`
	ButtonLabel string `json:"button_label,omitempty"`
	ButtonLink  string `json:"button_link,omitempty"`
}

// MissingPayload stands in for a payload that was absent or failed its
// kind's contract. Raw keeps whatever arrived so it round-trips unchanged.
type MissingPayload struct {
	Declared Kind
	Reason   string
	Raw      json.RawMessage
}

func (TextPayload) Kind() Kind { return KindText }
func (ImagePayload) Kind() Kind { return KindImage }
func (OfferPayload) Kind() Kind { return KindOffer }
func (MilestonePayload) Kind() Kind { return KindMilestone }
func (SystemEventPayload) Kind() Kind { return KindSystemEvent }
func (p MissingPayload) Kind() Kind { return p.Declared }

func (TextPayload) isPayload() {}
func (ImagePayload) isPayload() {}
func (OfferPayload) isPayload() {}
func (MilestonePayload) isPayload() {}
func (SystemEventPayload) isPayload() {}
func (MissingPayload) isPayload() {}

// Price returns the value pointer for building payloads inline.
func Price(v float64) *float64 {
	return &v
}

// DecodePayload never fails: anything that does not satisfy the kind's
// contract comes back as MissingPayload.
func DecodePayload(kind Kind, raw json.RawMessage) Payload {
	if kind == KindText {
		return TextPayload{}
	}
	if isEmptyJSON(raw) {
		return MissingPayload{Declared: kind, Reason: "payload missing"}
	}

	var p Payload
	var err error
	switch kind {
	case KindImage:
		var v ImagePayload
		err = json.Unmarshal(raw, &v)
		p = v
	case KindOffer:
		var v OfferPayload
		err = json.Unmarshal(raw, &v)
		p = v
	case KindMilestone:
		var v MilestonePayload
		err = json.Unmarshal(raw, &v)
		p = v
	case KindSystemEvent:
		var v SystemEventPayload
		err = json.Unmarshal(raw, &v)
		p = v
	default:
		return MissingPayload{Declared: kind, Reason: "unknown kind", Raw: raw}
	}
	if err != nil {
		return MissingPayload{Declared: kind, Reason: "payload is not valid json: " + err.Error(), Raw: raw}
	}
	if err := validatePayload(p); err != nil {
		return MissingPayload{Declared: kind, Reason: err.Error(), Raw: raw}
	}
	return p
}

// EncodePayload returns nil for payload-less kinds.
func EncodePayload(p Payload) (json.RawMessage, error) {
	switch v := p.(type) {
	case nil, TextPayload:
		return nil, nil
	case MissingPayload:
		return v.Raw, nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", p.Kind(), err)
		}
		return b, nil
	}
}

func validatePayload(p Payload) error {
	if _, ok := p.(TextPayload); ok {
		return nil
	}
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid %s payload: %s", p.Kind(), strings.Join(fields, ", "))
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}"))
}
