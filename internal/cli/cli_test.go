package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/registry"
)

const (
	pointID = "6e4d8a1b-2c3d-4e5f-8a9b-0c1d2e3f4a5b"
	nodeID  = "0f8f2c2c-8a3e-4c5b-9d1e-2a3b4c5d6e7f"

	pointDoc  = `{"TypeName":"position.point.gt","Version":"000","Id":"` + pointID + `","LatitudeMicroDeg":42933920,"LongitudeMicroDeg":-72278470}`
	legacyDoc = `{"TypeName":"g.node.gt","Version":"002","GNodeId":"` + nodeID + `","Alias":"d1.isone.ver.keene.ta","Role":"TerminalAsset","Status":"Active","GpsPointId":"` + pointID + `"}`
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "none"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDecodeStdin(t *testing.T) {
	out, _, err := run(t, pointDoc, "decode")
	require.NoError(t, err)
	assert.JSONEq(t, pointDoc, out)
}

func TestDecodeFilesKeepArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	legacy := writeFile(t, dir, "node.json", legacyDoc)
	point := writeFile(t, dir, "point.json", pointDoc)

	out, stderr, err := run(t, "", "decode", "--explain", "-w", "2", legacy, point)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var node map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &node))
	assert.Equal(t, "004", node["Version"])
	assert.Equal(t, "TerminalAsset", node["BaseClass"])
	assert.Equal(t, pointID, node["PositionPointId"])
	assert.JSONEq(t, pointDoc, lines[1])

	assert.Contains(t, stderr, legacy+": translated")
	assert.Contains(t, stderr, point+": current")
}

func TestDecodeReportsKinds(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", pointDoc)
	snake := writeFile(t, dir, "snake.json", `{"TypeName":"position.point.gt","Version":"000","id":"x"}`)
	garbage := writeFile(t, dir, "garbage.json", `[1, 2]`)
	missing := filepath.Join(dir, "missing.json")

	out, stderr, err := run(t, "", "decode", good, snake, garbage, missing)
	assert.ErrorIs(t, err, ErrFailed)
	assert.ErrorContains(t, err, "3 of 4")
	assert.JSONEq(t, pointDoc, out)
	assert.Contains(t, stderr, snake+": WireCase:")
	assert.Contains(t, stderr, garbage+": MalformedInput:")
	assert.Contains(t, stderr, missing+": IO:")
}

func TestStdinNamedOnce(t *testing.T) {
	_, _, err := run(t, pointDoc, "decode", "-", "-")
	assert.ErrorIs(t, err, ErrStdinTwice)

	db := filepath.Join(t.TempDir(), "registry.db")
	_, _, err = run(t, pointDoc, "--db", db, "store", "put", "-", "-")
	assert.ErrorIs(t, err, ErrStdinTwice)

	out, _, err := run(t, pointDoc, "decode", "-")
	require.NoError(t, err)
	assert.JSONEq(t, pointDoc, out)
}

func TestDecodeVersionPolicy(t *testing.T) {
	future := strings.Replace(pointDoc, `"Version":"000"`, `"Version":"001"`, 1)

	out, stderr, err := run(t, future, "decode", "--explain")
	require.NoError(t, err)
	assert.JSONEq(t, pointDoc, out)
	assert.Contains(t, stderr, "-: fallback")

	_, stderr, err = run(t, future, "--strict", "decode")
	assert.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, stderr, "UnknownVersion")
}

func TestTypes(t *testing.T) {
	out, _, err := run(t, "", "types", "-o", "json")
	require.NoError(t, err)
	var entries []registry.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, "connectivity.edge.gt", entries[0].TypeName)
	assert.Equal(t, []string{"-"}, entries[0].Legacy)

	out, _, err = run(t, "", "types", "g.node.gt")
	require.NoError(t, err)
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "002,003")
	assert.Contains(t, out, "g_node_id,alias")

	out, _, err = run(t, "", "types", "-o", "yaml", "position.point.gt")
	require.NoError(t, err)
	assert.Contains(t, out, "type_name: position.point.gt")

	_, _, err = run(t, "", "types", "no.such.type")
	assert.ErrorIs(t, err, schema.ErrUnknownType)

	_, _, err = run(t, "", "types", "-o", "xml")
	assert.Error(t, err)
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnr", "config.toml")

	out, _, err := run(t, "", "init-config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, _, err = run(t, "", "init-config", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, "", "init-config", "--force", path)
	require.NoError(t, err)

	_, _, err = run(t, pointDoc, "--config", path, "decode")
	require.NoError(t, err)
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "registry.db")
	point := writeFile(t, dir, "point.json", pointDoc)
	node := writeFile(t, dir, "node.json", legacyDoc)

	out, _, err := run(t, "", "--db", db, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "schema version 2\n", out)

	// the node references the point, so it fails first
	_, _, err = run(t, "", "--db", db, "store", "put", node)
	assert.ErrorContains(t, err, "does not exist")

	out, _, err = run(t, "", "--db", db, "store", "put", point, node)
	require.NoError(t, err)
	assert.Contains(t, out, "stored g.node.gt/004")

	out, _, err = run(t, "", "--db", db, "store", "get", "position.point.gt", pointID)
	require.NoError(t, err)
	assert.JSONEq(t, pointDoc, out)

	out, _, err = run(t, "", "--db", db, "store", "get", "g.node.gt", nodeID)
	require.NoError(t, err)
	assert.Contains(t, out, `"Version":"004"`)

	out, _, err = run(t, "", "--db", db, "store", "stats")
	require.NoError(t, err)
	assert.Equal(t, "connectivity.edge.gt\t0\ng.node.gt\t1\nposition.point.gt\t1\n", out)

	_, _, err = run(t, "", "--db", db, "store", "get", "g.node.gt", pointID)
	assert.ErrorContains(t, err, "not found")
}
