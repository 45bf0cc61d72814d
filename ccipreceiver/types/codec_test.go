package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFileToMessage(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	holding := solana.NewWallet().PublicKey()

	raw := `{
		"message_id": "0x` + strings.Repeat("00", 31) + `01",
		"source_chain_selector": 16015286601757825753,
		"sender": "0x` + strings.Repeat("11", 20) + `",
		"data": "Hello, CCIP!",
		"token_amounts": [{"token": "` + mint.String() + `", "amount": 1000}],
		"remaining_accounts": ["` + holding.String() + `"]
	}`

	var file MessageFile
	require.NoError(t, json.Unmarshal([]byte(raw), &file))

	msg, err := file.ToMessage()
	require.NoError(t, err)
	assert.Equal(t, byte(1), msg.MessageID[31])
	assert.Equal(t, uint64(16015286601757825753), msg.SourceChainSelector)
	assert.Len(t, msg.Sender, 20)
	assert.Equal(t, "Hello, CCIP!", string(msg.Data))
	require.Len(t, msg.TokenTransfers, 1)
	assert.Equal(t, TokenTransferRequest{Mint: mint, Amount: 1000, Index: 0}, msg.TokenTransfers[0])

	keys, err := file.RemainingAccountKeys()
	require.NoError(t, err)
	assert.Equal(t, []solana.PublicKey{holding}, keys)
}

func TestDecodeAddressBytes(t *testing.T) {
	key := solana.NewWallet().PublicKey()

	bz, err := DecodeAddressBytes(key.String())
	require.NoError(t, err)
	assert.Equal(t, key.Bytes(), bz)

	bz, err = DecodeAddressBytes("0x0102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, bz)

	bz, err = DecodeAddressBytes("")
	require.NoError(t, err)
	assert.Nil(t, bz)

	_, err = DecodeAddressBytes("0xzz")
	require.ErrorContains(t, err, "failed to decode hex")

	_, err = DecodeAddressBytes("0OIl")
	require.ErrorContains(t, err, "failed to decode base58")
}

func TestDecodeData(t *testing.T) {
	bz, err := DecodeData("0xdead")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, bz)

	bz, err = DecodeData("plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), bz)
}
