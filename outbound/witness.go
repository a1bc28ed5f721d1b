// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package outbound

import (
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/cctp"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

// BurnMinter is the burn surface of the CCTP collaborator.
type BurnMinter interface {
	// Burn burns amount toward mintRecipient on destinationDomain and
	// returns the burn and message records.
	Burn(amount *big.Int, destinationDomain uint32, mintRecipient transfer.Address) (cctp.BurnMessage, cctp.Message, error)

	// BurnWithCaller is Burn with the mint restricted to
	// destinationCaller on the destination domain.
	BurnWithCaller(amount *big.Int, destinationDomain uint32, mintRecipient, destinationCaller transfer.Address) (cctp.BurnMessage, cctp.Message, error)
}

// BurnWitness proves that one burn happened. It is produced exactly
// once, by DepositForBurn or DepositForBurnWithCaller, and consumed
// exactly once, by Publish. It carries the raw burn and message records
// the burn/mint subsystem emitted; nothing else in the system can
// construct one.
type BurnWitness struct {
	burn    cctp.BurnMessage
	message cctp.Message
	spent   atomic.Bool
}

// consume marks the witness spent. Only the first caller wins.
func (w *BurnWitness) consume() bool {
	return w.spent.CompareAndSwap(false, true)
}

// Message returns the header metadata of the burn's CCTP message. The
// witness remains unspent — only Publish consumes it.
func (w *BurnWitness) Message() cctp.Message {
	return w.message
}

// DepositForBurn burns amount toward mintRecipient on
// destinationDomain without restricting which destination address may
// drive the mint, and wraps the result as a BurnWitness.
func DepositForBurn(minter BurnMinter, amount *big.Int, destinationDomain uint32, mintRecipient transfer.Address) (*BurnWitness, error) {
	burn, message, err := minter.Burn(amount, destinationDomain, mintRecipient)
	if err != nil {
		return nil, fmt.Errorf("burning: %w", err)
	}
	return &BurnWitness{burn: burn, message: message}, nil
}

// DepositForBurnWithCaller is DepositForBurn with the mint restricted
// to destinationCaller.
func DepositForBurnWithCaller(minter BurnMinter, amount *big.Int, destinationDomain uint32, mintRecipient, destinationCaller transfer.Address) (*BurnWitness, error) {
	burn, message, err := minter.BurnWithCaller(amount, destinationDomain, mintRecipient, destinationCaller)
	if err != nil {
		return nil, fmt.Errorf("burning with caller restriction: %w", err)
	}
	return &BurnWitness{burn: burn, message: message}, nil
}
