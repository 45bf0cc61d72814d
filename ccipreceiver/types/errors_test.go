package types

import (
	"errors"
	"fmt"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Run("codes are stable", func(t *testing.T) {
		cases := map[uint32]*errorsmod.Error{
			2: ErrInvalidCaller,
			3: ErrUnauthorized,
			4: ErrInvalidRemainingAccounts,
			5: ErrInvalidTokenAccountOwner,
			6: ErrInvalidTokenAdmin,
			7: ErrMessageDataTooLarge,
			8: ErrTooManyTokens,
			9: ErrSenderAddressTooLarge,
		}
		for code, err := range cases {
			assert.Equal(t, code, err.ABCICode())
			assert.Equal(t, ModuleName, err.Codespace())
		}
	})

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		err := errorsmod.Wrapf(ErrInvalidTokenAdmin, "group %d", 1)
		require.True(t, errors.Is(err, ErrInvalidTokenAdmin))
		require.False(t, errors.Is(err, ErrInvalidCaller))
		assert.Contains(t, err.Error(), "Provided token admin PDA is incorrect")
	})

	t.Run("error kind labels", func(t *testing.T) {
		assert.Equal(t, "", ErrorKind(nil))
		assert.Equal(t, "InvalidCaller", ErrorKind(ErrInvalidCaller))
		assert.Equal(t, "TooManyTokens", ErrorKind(errorsmod.Wrap(ErrTooManyTokens, "6 > 5")))
		assert.Equal(t, "InsufficientFunds", ErrorKind(fmt.Errorf("forward: %w", ErrInsufficientFunds)))
		assert.Equal(t, "Internal", ErrorKind(errors.New("disk full")))
	})
}
