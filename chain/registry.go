// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/Not-Sarthak/vault-anchor/codec"
)

// Registry knows how to decode every action the ledger accepts and which
// program each one belongs to. The program id an action runs as comes from
// here, never from the action itself.
type Registry struct {
	actions  *codec.TypeParser[Action]
	programs map[uint8]codec.Address
}

func NewRegistry() *Registry {
	return &Registry{
		actions:  codec.NewTypeParser[Action](),
		programs: map[uint8]codec.Address{},
	}
}

// Register makes [action] decodable and binds it to [program].
func (r *Registry) Register(
	program codec.Address,
	action Action,
	unmarshal func(*codec.Packer) (Action, error),
) error {
	if err := r.actions.Register(action, unmarshal); err != nil {
		return fmt.Errorf("%w: action %d", err, action.GetTypeID())
	}
	r.programs[action.GetTypeID()] = program
	return nil
}

// Program returns the program [action] executes as.
func (r *Registry) Program(action Action) (codec.Address, error) {
	program, ok := r.programs[action.GetTypeID()]
	if !ok {
		return codec.EmptyAddress, fmt.Errorf("%w: action %d", ErrUnknownProgram, action.GetTypeID())
	}
	return program, nil
}

func (r *Registry) UnmarshalAction(p *codec.Packer) (Action, error) {
	return r.actions.Unmarshal(p)
}
