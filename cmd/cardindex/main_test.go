package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fadedpez/cardindex/internal/logging"
	"github.com/fadedpez/cardindex/pkg/recognition"
	"github.com/fadedpez/cardindex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	printTable(&out)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 54)
	assert.Equal(t, " 0  THREE_SPADES", lines[0])
	assert.Equal(t, "53  JOKER", lines[52])
	assert.Equal(t, "54  WONDER", lines[53])
}

func TestEncodeDecode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, encode(&out, []string{"ace_spades", "WONDER"}))
	assert.Equal(t, "ACE_SPADES\t11\nWONDER\t54\n", out.String())

	out.Reset()
	require.NoError(t, decode(&out, []string{"13", "53"}))
	assert.Equal(t, "13\tTHREE_HEARTS\n53\tJOKER\n", out.String())

	err := encode(io.Discard, []string{"JOKER_CLUBS"})
	assert.True(t, types.IsCardError(err, types.ErrInvalidCard))

	err = decode(io.Discard, []string{"52"})
	assert.True(t, types.IsCardError(err, types.ErrInvalidIndex))

	assert.Error(t, decode(io.Discard, []string{"x"}))
}

func TestDealIsSeeded(t *testing.T) {
	var first, second bytes.Buffer
	deal(&first, 5, 99)
	deal(&second, 5, 99)

	assert.Equal(t, first.String(), second.String())
	assert.Len(t, strings.Fields(first.String()), 5)
}

func TestObserve(t *testing.T) {
	in := strings.NewReader("THREE_SPADES JOKER\nWONDER@0.9 FIVE_HEARTS@0.1\n")
	var out bytes.Buffer
	logger := logging.NewLoggerWithWriter(io.Discard, logging.ERROR)

	err := observe(context.Background(), in, &out, recognition.Field, 0.5, logger)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	first := strings.Split(lines[0], "\t")
	require.Len(t, first, 4)
	assert.Equal(t, "field", first[1])
	assert.Equal(t, "0020000000000001", first[2])
	assert.Equal(t, "THREE_SPADES JOKER", first[3])
	assert.True(t, strings.HasSuffix(lines[1], "\tWONDER"))
}

func TestObserveStopsOnBadLabel(t *testing.T) {
	in := strings.NewReader("TEN\n")
	logger := logging.NewLoggerWithWriter(io.Discard, logging.ERROR)

	err := observe(context.Background(), in, io.Discard, recognition.Hand, 0, logger)

	assert.True(t, types.IsCardError(err, types.ErrInvalidCard))
}

// clearConfigEnv makes config.Load fall back to its defaults
func clearConfigEnv(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "MIN_CONFIDENCE", "SHUFFLE_SEED", "ENVIRONMENT"} {
		t.Setenv(key, "")
	}
}

func TestRunLoadsConfigOnlyWhenNeeded(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MIN_CONFIDENCE", "high")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"table"}, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "54  WONDER")

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"help"}, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Usage:")

	for _, args := range [][]string{
		{"encode", "JOKER"},
		{"decode", "0"},
		{"deal", "-n", "3"},
		{"observe"},
	} {
		err := run(context.Background(), args, strings.NewReader(""), io.Discard)
		assert.True(t, types.IsCardError(err, types.ErrInvalidConfig), "%v should need config, got %v", args, err)
	}
}

func TestRunSubcommands(t *testing.T) {
	clearConfigEnv(t)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"encode", "TWO_SPADES"}, strings.NewReader(""), &out))
	assert.Equal(t, "TWO_SPADES\t12\n", out.String())

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"deal", "-n", "4", "-seed", "5"}, strings.NewReader(""), &out))
	assert.Len(t, strings.Fields(out.String()), 4)

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"observe", "-region", "field"}, strings.NewReader("WONDER\n"), &out))
	assert.True(t, strings.HasSuffix(strings.TrimRight(out.String(), "\n"), "\tfield\t0040000000000000\tWONDER"))

	assert.ErrorIs(t, run(context.Background(), []string{"bogus"}, strings.NewReader(""), io.Discard), errUsage)
	assert.ErrorIs(t, run(context.Background(), []string{"observe", "-region", "deck"}, strings.NewReader(""), io.Discard), errUsage)
	assert.ErrorIs(t, run(context.Background(), []string{"encode"}, strings.NewReader(""), io.Discard), errUsage)
}
