package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// run executes the CLI with args against home and returns its output.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--home", home))
	err := cmd.Execute()
	return out.String(), err
}

func writeMessage(t *testing.T, dir string, file types.MessageFile) string {
	t.Helper()
	bz, err := json.Marshal(file)
	require.NoError(t, err)
	path := filepath.Join(dir, "message.json")
	require.NoError(t, os.WriteFile(path, bz, 0o600))
	return path
}

func TestReceiverLifecycle(t *testing.T) {
	t.Setenv("CCIPR_LOG_LEVEL", "3")
	home := t.TempDir()
	owner := solana.NewWallet().PublicKey()
	router := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	_, err := run(t, home, "init-config")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(home, "config", "receiver_config.json"))

	_, err = run(t, home, "initialize", "--owner", owner.String(), "--router", router.String())
	require.NoError(t, err)

	_, err = run(t, home, "initialize", "--owner", owner.String(), "--router", router.String())
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)

	_, err = run(t, home, "fund", "--mint", mint.String(), "--amount", "1000")
	require.NoError(t, err)

	msgPath := writeMessage(t, home, types.MessageFile{
		MessageID:           "0x0000000000000000000000000000000000000000000000000000000000000001",
		SourceChainSelector: 16015286601757825753,
		Sender:              "0x1111111111111111111111111111111111111111",
		Data:                "hello",
		TokenAmounts:        []types.TokenAmountEntry{{Token: mint.String(), Amount: 400}},
	})

	t.Run("rejects unknown caller", func(t *testing.T) {
		_, err := run(t, home, "receive", "--caller", owner.String(), "--message", msgPath, "--derive-accounts")
		require.ErrorIs(t, err, types.ErrInvalidCaller)
	})

	t.Run("rejects missing remaining accounts", func(t *testing.T) {
		_, err := run(t, home, "receive", "--caller", router.String(), "--message", msgPath)
		require.ErrorIs(t, err, types.ErrInvalidRemainingAccounts)
	})

	t.Run("receives and forwards", func(t *testing.T) {
		out, err := run(t, home, "receive", "--caller", router.String(), "--message", msgPath, "--derive-accounts")
		require.NoError(t, err)
		assert.Contains(t, out, "received")

		out, err = run(t, home, "latest-message", "-o", "json")
		require.NoError(t, err)
		var latest LatestMessageOutput
		require.NoError(t, json.Unmarshal([]byte(out), &latest))
		assert.Equal(t, uint64(16015286601757825753), latest.SourceChainSelector)
		assert.Equal(t, uint8(1), latest.TokenCount)
		assert.Equal(t, uint64(5), latest.DataLength)
		assert.Equal(t, "0x68656c6c6f", latest.Data)

		out, err = run(t, home, "balance", "--mint", mint.String(), "--wallet", owner.String(), "-o", "json")
		require.NoError(t, err)
		var balance BalanceOutput
		require.NoError(t, json.Unmarshal([]byte(out), &balance))
		assert.Equal(t, "400", balance.Amount)
	})

	t.Run("owner withdraws the rest", func(t *testing.T) {
		_, err := run(t, home, "withdraw", "--caller", router.String(), "--mint", mint.String(), "--amount", "1")
		require.ErrorIs(t, err, types.ErrUnauthorized)

		_, err = run(t, home, "withdraw", "--caller", owner.String(), "--mint", mint.String(), "--amount", "600")
		require.NoError(t, err)

		out, err := run(t, home, "balance", "--mint", mint.String(), "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, `amount: "0"`)
	})

	t.Run("shows config", func(t *testing.T) {
		out, err := run(t, home, "show-config", "-o", "json")
		require.NoError(t, err)
		var cfg ConfigOutput
		require.NoError(t, json.Unmarshal([]byte(out), &cfg))
		assert.Equal(t, owner.String(), cfg.Owner)
		assert.Equal(t, owner.String(), cfg.Recipient)
		assert.Equal(t, router.String(), cfg.Router)
	})
}

func TestCommandsWithoutConfig(t *testing.T) {
	_, err := run(t, t.TempDir(), "latest-message")
	require.Error(t, err)
}

func TestPrintOutput(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, printOutput(&buf, ConfigOutput{}, "xml"))

	require.NoError(t, printOutput(&buf, ConfigOutput{Owner: "o"}, OutputFormatYAML))
	assert.Contains(t, buf.String(), "owner: o")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ccipreceiverd")
}
