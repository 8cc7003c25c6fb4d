package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FORM_ENDPOINT", "https://forms.example.com/hook")
	t.Setenv("GIN_MODE", "test")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSubmitContactDryRun(t *testing.T) {
	out, err := runCommand(t, "submit", "contact", "--dry-run",
		"--name", "Jane Doe", "--email", "jane@x.com", "--type", "Consultation", "--message", "Hi")
	require.NoError(t, err)

	assert.Contains(t, out, "POST https://forms.example.com/hook\n")
	assert.Contains(t, out, "Name=Jane%20Doe&Email=jane%40x.com&Type=Consultation&Message=Hi\n")
	assert.Contains(t, out, "Message Sent!")
}

func TestSubmitContactValidation(t *testing.T) {
	_, err := runCommand(t, "submit", "contact", "--dry-run", "--name", "Jane Doe")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestSubmitNotifyDryRun(t *testing.T) {
	out, err := runCommand(t, "submit", "notify", "--dry-run", "--endpoint", "https://other.example.com",
		"--product", "Web Helm", "--email", "a@b.com")
	require.NoError(t, err)

	assert.Contains(t, out, "POST https://other.example.com\n")
	assert.Contains(t, out, "Product=Web%20Helm&Email=a%40b.com\n")
}

func TestSubmitNotifyUnknownProduct(t *testing.T) {
	_, err := runCommand(t, "submit", "notify", "--dry-run", "--product", "Nope", "--email", "a@b.com")
	assert.ErrorIs(t, err, usecase.ErrUnknownProduct)
}
