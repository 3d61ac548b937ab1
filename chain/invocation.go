// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/pda"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/system"
)

// Invocation is the context a program executes in: the program's id, the
// addresses that signed the transaction and the transaction's state.
//
// A program may act as signer for any address derived from its own id by
// passing the seeds of that address to one of the *Signed calls. The host
// re-derives the address under the executing program's id, so a program can
// never sign for another program's addresses.
type Invocation struct {
	program codec.Address
	signers set.Set[codec.Address]
	mu      state.Mutable
}

func NewInvocation(program codec.Address, signers set.Set[codec.Address], mu state.Mutable) *Invocation {
	return &Invocation{
		program: program,
		signers: signers,
		mu:      mu,
	}
}

func (i *Invocation) Program() codec.Address {
	return i.program
}

func (i *Invocation) State() state.Mutable {
	return i.mu
}

// Signed reports whether [addr] signed the transaction.
func (i *Invocation) Signed(addr codec.Address) bool {
	return i.signers.Contains(addr)
}

// signersWith returns the transaction signers plus every address derived
// from [seeds] under the executing program.
func (i *Invocation) signersWith(seeds []pda.Seeds) (set.Set[codec.Address], error) {
	if len(seeds) == 0 {
		return i.signers, nil
	}
	signers := set.NewSet[codec.Address](i.signers.Len() + len(seeds))
	signers.Union(i.signers)
	for _, s := range seeds {
		addr, err := pda.CreateAddress(s, i.program)
		if err != nil {
			return nil, err
		}
		signers.Add(addr)
	}
	return signers, nil
}

// Transfer moves native value with only the transaction's signers.
func (i *Invocation) Transfer(
	ctx context.Context,
	from codec.Address,
	to codec.Address,
	amount uint64,
) (uint64, uint64, error) {
	return system.Transfer(ctx, i.mu, i.signers, from, to, amount)
}

// TransferSigned moves native value, additionally signing as the addresses
// derived from [seeds].
func (i *Invocation) TransferSigned(
	ctx context.Context,
	from codec.Address,
	to codec.Address,
	amount uint64,
	seeds ...pda.Seeds,
) (uint64, uint64, error) {
	signers, err := i.signersWith(seeds)
	if err != nil {
		return 0, 0, err
	}
	return system.Transfer(ctx, i.mu, signers, from, to, amount)
}

// CreateAccountSigned creates a data account owned by the executing program.
func (i *Invocation) CreateAccountSigned(
	ctx context.Context,
	payer codec.Address,
	addr codec.Address,
	lamports uint64,
	space uint64,
	seeds ...pda.Seeds,
) error {
	signers, err := i.signersWith(seeds)
	if err != nil {
		return err
	}
	return system.CreateAccount(ctx, i.mu, signers, payer, addr, lamports, space, i.program)
}

func (i *Invocation) WriteData(ctx context.Context, addr codec.Address, data []byte) error {
	return system.WriteData(ctx, i.mu, i.program, addr, data)
}

func (i *Invocation) CloseAccount(ctx context.Context, addr codec.Address, dest codec.Address) (uint64, error) {
	return system.CloseAccount(ctx, i.mu, i.program, addr, dest)
}
