package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/gaspass/internal/crypto"
	"github.com/MKhiriev/gaspass/internal/mock"
	"github.com/MKhiriev/gaspass/internal/service"
	"github.com/MKhiriev/gaspass/models"
)

// ── test doubles ──────────────────────────────────────────────────────────────

type queuePrompter struct {
	secrets []string
	prompts []string
}

func (p *queuePrompter) ReadSecret(prompt string) ([]byte, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.secrets) == 0 {
		return nil, io.EOF
	}
	s := p.secrets[0]
	p.secrets = p.secrets[1:]
	return []byte(s), nil
}

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type closeCounter struct{ closed int }

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

type testApp struct {
	*App
	vault     *mock.MockVaultService
	prompter  *queuePrompter
	clipboard *memClipboard
	closer    *closeCounter
}

func newTestApp(t *testing.T, secrets ...string) *testApp {
	t.Helper()

	ta := &testApp{
		vault:     mock.NewMockVaultService(gomock.NewController(t)),
		prompter:  &queuePrompter{secrets: secrets},
		clipboard: &memClipboard{},
		closer:    &closeCounter{},
	}
	ta.App = &App{
		appInfo:   service.NewAppInfoService(models.NewAppBuildInfo("1.0.0", "2026-10-15", "abc")),
		prompter:  ta.prompter,
		clipboard: ta.clipboard,
		open: func(ctx context.Context) (context.Context, service.VaultService, io.Closer, error) {
			return ctx, ta.vault, ta.closer, nil
		},
	}
	return ta
}

func (ta *testApp) run(args ...string) (string, error) {
	var out bytes.Buffer
	root := ta.Command()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

var lockedRecord = models.Record{Site: "example.com", User: "alice", PasswordCipher: "aa", IV: "bb"}

// ── add ───────────────────────────────────────────────────────────────────────

func TestAddCmd(t *testing.T) {
	ta := newTestApp(t, "correct horse", "hunter2")

	gomock.InOrder(
		ta.vault.EXPECT().Unlock(gomock.Any(), "correct horse").Return(nil),
		ta.vault.EXPECT().Add(gomock.Any(), "example.com", "alice", "hunter2").Return(lockedRecord, nil),
		ta.vault.EXPECT().Lock(gomock.Any()),
	)

	out, err := ta.run("add", "example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, "added alice for example.com\n", out)
	assert.Equal(t, []string{"Passphrase: ", "Password for example.com: "}, ta.prompter.prompts)
	assert.Equal(t, 1, ta.closer.closed)
}

func TestAddCmd_UnlockFails(t *testing.T) {
	ta := newTestApp(t, "")

	ta.vault.EXPECT().Unlock(gomock.Any(), "").Return(service.ErrValidationNoPassphrase)

	_, err := ta.run("add", "example.com", "alice")
	require.ErrorIs(t, err, service.ErrValidationNoPassphrase)
	assert.Equal(t, 1, ta.closer.closed)
}

func TestAddCmd_AddFails(t *testing.T) {
	ta := newTestApp(t, "pass", "pw")

	ta.vault.EXPECT().Unlock(gomock.Any(), "pass").Return(nil)
	ta.vault.EXPECT().Add(gomock.Any(), "example.com", "alice", "pw").Return(models.Record{}, assert.AnError)
	ta.vault.EXPECT().Lock(gomock.Any())

	_, err := ta.run("add", "example.com", "alice")
	require.ErrorIs(t, err, assert.AnError)
}

func TestAddCmd_Args(t *testing.T) {
	ta := newTestApp(t)

	_, err := ta.run("add", "example.com")
	require.Error(t, err)
}

// ── search ────────────────────────────────────────────────────────────────────

func TestSearchCmd(t *testing.T) {
	ta := newTestApp(t)

	ta.vault.EXPECT().Search(gomock.Any(), "example").Return([]models.Record{
		lockedRecord,
		{Site: "example.org", User: "bob"},
	}, nil)

	out, err := ta.run("search", "example")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"SITE", "USER", "PASSWORD"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"example.com", "alice", lockedMarker}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"example.org", "bob", "-"}, strings.Fields(lines[2]))

	// search never asks for the passphrase
	assert.Empty(t, ta.prompter.prompts)
}

func TestSearchCmd_NoTermNoRows(t *testing.T) {
	ta := newTestApp(t)

	ta.vault.EXPECT().Search(gomock.Any(), "").Return(nil, nil)

	out, err := ta.run("search")
	require.NoError(t, err)
	assert.Equal(t, "no records found\n", out)
}

func TestSearchCmd_OpenFails(t *testing.T) {
	ta := newTestApp(t)
	ta.open = func(ctx context.Context) (context.Context, service.VaultService, io.Closer, error) {
		return ctx, nil, nil, assert.AnError
	}

	_, err := ta.run("search")
	require.ErrorIs(t, err, assert.AnError)
}

// ── reveal ────────────────────────────────────────────────────────────────────

func TestRevealCmd(t *testing.T) {
	ta := newTestApp(t, "pass")

	gomock.InOrder(
		ta.vault.EXPECT().Unlock(gomock.Any(), "pass").Return(nil),
		ta.vault.EXPECT().Search(gomock.Any(), "example.com").Return([]models.Record{lockedRecord}, nil),
		ta.vault.EXPECT().Reveal(gomock.Any(), lockedRecord).Return("hunter2", nil),
		ta.vault.EXPECT().Lock(gomock.Any()),
	)

	out, err := ta.run("reveal", "example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, "hunter2\n", out)
}

func TestRevealCmd_Copy(t *testing.T) {
	ta := newTestApp(t, "pass")

	ta.vault.EXPECT().Unlock(gomock.Any(), "pass").Return(nil)
	ta.vault.EXPECT().Search(gomock.Any(), "example.com").Return([]models.Record{lockedRecord}, nil)
	ta.vault.EXPECT().Reveal(gomock.Any(), lockedRecord).Return("hunter2", nil)
	ta.vault.EXPECT().Lock(gomock.Any())

	out, err := ta.run("reveal", "--copy", "example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", ta.clipboard.text)
	assert.NotContains(t, out, "hunter2")
}

func TestRevealCmd_CopyFails(t *testing.T) {
	ta := newTestApp(t, "pass")
	ta.clipboard.err = errors.New("no clipboard utility")

	ta.vault.EXPECT().Unlock(gomock.Any(), "pass").Return(nil)
	ta.vault.EXPECT().Search(gomock.Any(), "example.com").Return([]models.Record{lockedRecord}, nil)
	ta.vault.EXPECT().Reveal(gomock.Any(), lockedRecord).Return("hunter2", nil)
	ta.vault.EXPECT().Lock(gomock.Any())

	_, err := ta.run("reveal", "--copy", "example.com", "alice")
	require.ErrorIs(t, err, ta.clipboard.err)
}

func TestRevealCmd_PicksLatestMatchingRow(t *testing.T) {
	ta := newTestApp(t, "pass")

	older := models.Record{Site: "example.com", User: "alice", PasswordCipher: "01", IV: "02"}
	newer := models.Record{Site: "example.com", User: "alice", PasswordCipher: "03", IV: "04"}

	ta.vault.EXPECT().Unlock(gomock.Any(), "pass").Return(nil)
	ta.vault.EXPECT().Search(gomock.Any(), "example.com").Return([]models.Record{
		older,
		{Site: "example.com", User: "alicia", PasswordCipher: "05", IV: "06"},
		newer,
	}, nil)
	ta.vault.EXPECT().Reveal(gomock.Any(), newer).Return("latest", nil)
	ta.vault.EXPECT().Lock(gomock.Any())

	out, err := ta.run("reveal", "example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, "latest\n", out)
}

func TestRevealCmd_NotFound(t *testing.T) {
	ta := newTestApp(t, "pass")

	ta.vault.EXPECT().Unlock(gomock.Any(), "pass").Return(nil)
	ta.vault.EXPECT().Search(gomock.Any(), "example.com").Return([]models.Record{{Site: "example.com", User: "bob"}}, nil)
	ta.vault.EXPECT().Lock(gomock.Any())

	_, err := ta.run("reveal", "example.com", "alice")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRevealCmd_HidesDecryptCause(t *testing.T) {
	ta := newTestApp(t, "pass")

	cause := errors.Join(service.ErrCouldNotDecrypt, crypto.ErrInvalidCiphertextLength)

	ta.vault.EXPECT().Unlock(gomock.Any(), "pass").Return(nil)
	ta.vault.EXPECT().Search(gomock.Any(), "example.com").Return([]models.Record{lockedRecord}, nil)
	ta.vault.EXPECT().Reveal(gomock.Any(), lockedRecord).Return("", cause)
	ta.vault.EXPECT().Lock(gomock.Any())

	_, err := ta.run("reveal", "example.com", "alice")
	require.Error(t, err)
	assert.Equal(t, "could not decrypt", err.Error())
}

// ── version ───────────────────────────────────────────────────────────────────

func TestVersionCmd(t *testing.T) {
	ta := newTestApp(t)

	out, err := ta.run("version")
	require.NoError(t, err)
	assert.Equal(t, "gaspass 1.0.0 (commit abc, built 2026-10-15)\n", out)
}

// ── flags ─────────────────────────────────────────────────────────────────────

func TestCommand_BindsConfigFlags(t *testing.T) {
	ta := newTestApp(t)

	ta.vault.EXPECT().Search(gomock.Any(), "").Return(nil, nil)

	_, err := ta.run("--kdf-mode", "hardened", "--dsn", "other.db", "search")
	require.NoError(t, err)
	assert.Equal(t, "hardened", ta.flags.Crypto.KDFMode)
	assert.Equal(t, "other.db", ta.flags.Storage.DB.DSN)
}
