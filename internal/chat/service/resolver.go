package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"gomarket/internal/common"
	"gomarket/internal/dbmysql"
)

const resolveTimeout = 10 * time.Second

type resolveOptions struct {
	contractID string
}

type ResolveOption func(*resolveOptions)

// WithContract links a newly created conversation to a contract. It has no
// effect when the conversation already exists.
func WithContract(contractID string) ResolveOption {
	return func(o *resolveOptions) {
		o.contractID = contractID
	}
}

// Resolver finds or lazily creates the conversation of a party pair.
type Resolver struct {
	backend Backend
	group   singleflight.Group
}

func NewResolver(backend Backend) *Resolver {
	return &Resolver{backend: backend}
}

// Resolve treats (partyA, partyB) as unordered for identity; partyA takes
// the buyer role if the conversation is created here.
func (r *Resolver) Resolve(ctx context.Context, partyA, partyB string, opts ...ResolveOption) (Conversation, error) {
	partyA, partyB = strings.TrimSpace(partyA), strings.TrimSpace(partyB)
	if partyA == "" || partyB == "" {
		return Conversation{}, fmt.Errorf("%w: both parties are required", common.ErrInvalidParticipants)
	}
	if partyA == partyB {
		return Conversation{}, fmt.Errorf("%w: cannot open a conversation with yourself", common.ErrInvalidParticipants)
	}

	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	// the lookup is shared by every concurrent caller of the pair, so it
	// must not die with the first caller's context
	low, high := dbmysql.OrderedPair(partyA, partyB)
	ch := r.group.DoChan(low+"|"+high, func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), resolveTimeout)
		defer cancel()
		return r.backend.FindOrCreateConversation(shared, partyA, partyB, o.contractID)
	})

	select {
	case <-ctx.Done():
		return Conversation{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Conversation{}, res.Err
		}
		return res.Val.(Conversation), nil
	}
}
