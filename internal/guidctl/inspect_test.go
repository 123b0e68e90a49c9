package guidctl

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitamPoc/VitamCommon/pkg/errors"
	"github.com/VitamPoc/VitamCommon/pkg/id"
)

const (
	sampleHex    = "dc9c531160d0def10bcecc00014628614b89"
	sampleBase64 = "3JxTEWDQ3vELzswAAUYoYUuJ"
)

func TestInspect(t *testing.T) {
	for _, input := range []string{sampleHex, sampleBase64, " " + sampleBase64 + "\n"} {
		in := Inspect(input)
		require.True(t, in.Valid, input)
		assert.Equal(t, "d", in.Version)
		assert.Equal(t, 4448, in.ProcessID)
		assert.Equal(t, int64(1400836803465), in.Timestamp)
		assert.Equal(t, uint32(0x35c9cd), in.Counter)
		assert.Equal(t, "00def10bcecc", in.MachineID)
		assert.Equal(t, sampleHex, in.Hex)
		assert.Equal(t, sampleBase64, in.Base64)
		assert.Equal(t, "2014-05-23T09:20:03.465Z", in.Time)
	}
}

func TestInspectInvalid(t *testing.T) {
	in := Inspect("not-an-id")
	assert.False(t, in.Valid)
	assert.NotEmpty(t, in.Error)
	assert.Equal(t, -1, in.ProcessID)
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestInspectOtherSchemes(t *testing.T) {
	frozen := time.UnixMilli(1400836803465)
	ulid := id.NewULIDGenerator(id.WithULIDTimeFunc(func() time.Time { return frozen })).Generate()

	in := Inspect(ulid)
	assert.False(t, in.Valid)
	assert.Equal(t, string(id.TypeULID), in.Scheme)
	assert.Equal(t, int64(1400836803465), in.Timestamp)
	assert.Equal(t, "2014-05-23T09:20:03.465Z", in.Time)

	in = Inspect(id.NewUUIDGenerator(id.WithVersion(4)).Generate())
	assert.False(t, in.Valid)
	assert.Equal(t, string(id.TypeUUIDv4), in.Scheme)
	assert.Empty(t, in.Time)

	assert.Empty(t, Inspect("not-an-id").Scheme)

	var out bytes.Buffer
	printInspection(&out, Inspect(ulid))
	assert.Contains(t, out.String(), "scheme:     ulid")
	assert.Contains(t, out.String(), "time:       2014-05-23T09:20:03.465Z")
}

func TestRunInspect(t *testing.T) {
	cmd, out := newTestCommand()
	err := runInspect(cmd, &inspectOptions{}, []string{sampleBase64})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "process id: 4448")
	assert.Contains(t, out.String(), "hex:        "+sampleHex)
}

func TestRunInspectReportsInvalid(t *testing.T) {
	cmd, out := newTestCommand()
	err := runInspect(cmd, &inspectOptions{jsonOut: true}, []string{sampleBase64, "bogus"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, ErrInvalidIdentifiers.Code))
	assert.Equal(t, 2, strings.Count(out.String(), `"input"`))
	assert.Contains(t, out.String(), `"valid": false`)
}

func TestRunInspectNoInput(t *testing.T) {
	cmd, _ := newTestCommand()
	err := runInspect(cmd, &inspectOptions{}, nil)
	assert.True(t, errors.IsCode(err, ErrInvalidIdentifiers.Code))
}
