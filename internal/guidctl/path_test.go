package guidctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitamPoc/VitamCommon/pkg/errors"
	"github.com/VitamPoc/VitamCommon/pkg/guid"
)

func testIDs(t *testing.T, n int) []guid.GUID {
	t.Helper()
	gen := guid.NewGenerator(
		guid.WithMachineID([]byte{0x02, 0x42, 0xac, 0x11, 0x00, 0x02}),
		guid.WithProcessID(1234),
		guid.WithCounter(guid.NewCounterAt(0)),
	)
	return gen.NewN(n)
}

func TestApplyPathOp(t *testing.T) {
	ids := testIDs(t, 3)
	path := guid.Assemble(ids...)

	res, err := ApplyPathOp(OpCount, path, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.True(t, res.Multiple)

	res, err = ApplyPathOp(OpFirst, path, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0].String()}, res.IDs)

	res, err = ApplyPathOp("LAST", path, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[2].String()}, res.IDs)

	res, err = ApplyPathOp(OpAll, path, false, nil)
	require.NoError(t, err)
	assert.Len(t, res.IDs, 3)

	res, err = ApplyPathOp(OpSharp, path, false, nil)
	require.NoError(t, err)
	assert.Equal(t, guid.AssembleSharp(ids...), res.Sharp)
}

func TestApplyPathOpSharpInput(t *testing.T) {
	ids := testIDs(t, 2)

	res, err := ApplyPathOp(OpAll, guid.AssembleSharp(ids...), true, nil)
	require.NoError(t, err)
	assert.Equal(t, guid.Assemble(ids...), res.Path)
	assert.Equal(t, []string{ids[0].String(), ids[1].String()}, res.IDs)

	_, err = ApplyPathOp(OpAll, ids[0].String()+"-"+ids[1].String(), true, nil)
	assert.True(t, errors.IsCode(err, guid.ErrInvalidFormat.Code))
}

func TestApplyPathOpContains(t *testing.T) {
	ids := testIDs(t, 3)
	path := guid.Assemble(ids[:2]...)

	res, err := ApplyPathOp(OpContains, path, false, []string{ids[2].String(), ids[1].String()})
	require.NoError(t, err)
	require.NotNil(t, res.Contains)
	assert.True(t, *res.Contains)

	res, err = ApplyPathOp(OpContains, path, false, []string{ids[2].String()})
	require.NoError(t, err)
	assert.False(t, *res.Contains)

	_, err = ApplyPathOp(OpContains, path, false, nil)
	assert.True(t, errors.IsCode(err, ErrInvalidIdentifiers.Code))
}

func TestApplyPathOpErrors(t *testing.T) {
	_, err := ApplyPathOp(OpFirst, "short", false, nil)
	assert.True(t, errors.IsCode(err, guid.ErrInvalidFormat.Code))

	_, err = ApplyPathOp("reverse", testIDs(t, 1)[0].String(), false, nil)
	assert.True(t, errors.IsCode(err, ErrUnknownOperation.Code))
}

func TestRunPath(t *testing.T) {
	ids := testIDs(t, 2)
	cmd, out := newTestCommand()

	err := runPath(cmd, &pathOptions{}, OpCount, []string{guid.Assemble(ids...), ids[0].String()})
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out.String())
}
