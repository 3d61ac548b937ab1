// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
)

// TypeParser maps type ids to decoders for values of type T.
type TypeParser[T Typed] struct {
	typeToIndex    map[string]uint8
	indexToDecoder map[uint8]func(*Packer) (T, error)
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		typeToIndex:    map[string]uint8{},
		indexToDecoder: map[uint8]func(*Packer) (T, error){},
	}
}

// Register adds a decoder for [o]. The id used on the wire is o.GetTypeID();
// registering the same id or the same Go type twice fails.
func (p *TypeParser[T]) Register(o T, f func(*Packer) (T, error)) error {
	k := fmt.Sprintf("%T", o)
	if _, ok := p.typeToIndex[k]; ok {
		return ErrDuplicateItem
	}
	id := o.GetTypeID()
	if _, ok := p.indexToDecoder[id]; ok {
		return ErrDuplicateItem
	}
	p.typeToIndex[k] = id
	p.indexToDecoder[id] = f
	return nil
}

func (p *TypeParser[T]) LookupIndex(index uint8) (func(*Packer) (T, error), bool) {
	f, ok := p.indexToDecoder[index]
	return f, ok
}

// Unmarshal reads a type prefix from [r] and decodes the value behind it.
func (p *TypeParser[T]) Unmarshal(r *Packer) (T, error) {
	var empty T
	typeID := r.UnpackByte()
	if err := r.Err(); err != nil {
		return empty, err
	}
	f, ok := p.LookupIndex(typeID)
	if !ok {
		return empty, fmt.Errorf("%w: %d", ErrUnknownType, typeID)
	}
	return f(r)
}
