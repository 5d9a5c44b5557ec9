package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	t  *testing.T
	db string
}

// newCLI runs commands against a fresh SQLite file so state carries over
// between invocations.
func newCLI(t *testing.T) *cli {
	t.Chdir(t.TempDir())
	return &cli{t: t, db: filepath.Join(t.TempDir(), "cli.sqlite")}
}

func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	root, env := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--driver", "sqlite", "--db", c.db, "--log-level", "error"}, args...))
	err := execute(root, env)
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run("", args...)
	require.NoError(c.t, err, out)
	return out
}

func TestListEmpty(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("list", "manajer")

	assert.Contains(t, out, "Tidak ada data manajer")
}

func TestAddListGet(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("add", "manajer", "--set", "id_manajer=M1", "--set", "nama_manajer=Andi", "--set", "kontak_manajer=0812")
	assert.Contains(t, out, "manajer M1 disimpan")

	out = c.mustRun("list", "manajer")
	assert.Contains(t, out, "Andi")
	assert.Contains(t, out, "Nama Manajer")

	out = c.mustRun("get", "manajer", "M1")
	assert.Contains(t, out, "Kontak Manajer")
	assert.Contains(t, out, "0812")
}

func TestAddGeneratesID(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("add", "jenis", "--set", "nama_jenis=Rumah")

	assert.Regexp(t, `jenis [0-9a-f-]{36} disimpan`, out)
}

func TestAddValidation(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "add", "properti", "--set", "nama_properti=Villa", "--set", "harga=murah")
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrValidation)

	_, err = c.run("", "add", "manajer", "--set", "gaji=1")
	assert.ErrorContains(t, err, "unknown field")

	_, err = c.run("", "add", "manajer", "--set", "nama_manajer")
	assert.ErrorContains(t, err, "want field=value")
}

func TestUpdate(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "manajer", "--set", "id_manajer=M1", "--set", "nama_manajer=Andi", "--set", "kontak_manajer=0812")

	out := c.mustRun("update", "manajer", "M1", "--set", "nama_manajer=Budi")
	assert.Contains(t, out, "diperbarui")

	out = c.mustRun("get", "manajer", "M1")
	assert.Contains(t, out, "Budi")
	assert.Contains(t, out, "0812", "unset fields keep their value")

	_, err := c.run("", "update", "manajer", "M1", "--set", "id_manajer=M2")
	assert.ErrorContains(t, err, "identifier cannot be changed")

	_, err = c.run("", "update", "manajer", "M9", "--set", "nama_manajer=X")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestDeleteConfirmation(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "jenis", "--set", "id_jenis=J1", "--set", "nama_jenis=Rumah")

	out, err := c.run("n\n", "delete", "jenis", "J1")
	require.NoError(t, err)
	assert.Contains(t, out, "Apakah anda yakin ingin menghapus data?")
	assert.Contains(t, out, "Dibatalkan")
	assert.Contains(t, c.mustRun("list", "jenis"), "Rumah")

	out, err = c.run("y\n", "delete", "jenis", "J1")
	require.NoError(t, err)
	assert.Contains(t, out, "jenis J1 dihapus")
	assert.Contains(t, c.mustRun("list", "jenis"), "Tidak ada data jenis")
}

func TestDeleteYes(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "jenis", "--set", "id_jenis=J1", "--set", "nama_jenis=Rumah")

	out := c.mustRun("delete", "jenis", "J1", "--yes")
	assert.NotContains(t, out, "Apakah anda yakin")

	_, err := c.run("", "delete", "jenis", "J1", "--yes")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestSearch(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "pemilik", "--set", "id_pemilik=O1", "--set", "nama_pemilik=Sari Dewi", "--set", "alamat_pemilik=Jl. Mawar", "--set", "kontak_pemilik=0815")
	c.mustRun("add", "pemilik", "--set", "id_pemilik=O2", "--set", "nama_pemilik=Joko", "--set", "alamat_pemilik=Jl. Melati", "--set", "kontak_pemilik=0816")

	out := c.mustRun("search", "pemilik", "sari")
	assert.Contains(t, out, "Sari Dewi")
	assert.NotContains(t, out, "Joko")

	out = c.mustRun("search", "pemilik", "budi")
	assert.Contains(t, out, "Tidak ada pemilik yang cocok")
}

func TestUnknownEntity(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "list", "penyewa")

	assert.ErrorContains(t, err, "unknown entity")
}

func TestServeRejectsRemoteDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	root, env := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--driver", "remote", "serve"})

	err := execute(root, env)

	assert.ErrorContains(t, err, "local store driver")
}

func TestFailingCommandClosesStore(t *testing.T) {
	c := newCLI(t)
	root, env := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--driver", "sqlite", "--db", c.db, "--log-level", "error", "delete", "manajer", "M9", "--yes"})

	var db *sqlx.DB
	setup := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		err := setup(cmd, args)
		db, _ = env.repos.Closer.(*sqlx.DB)
		return err
	}

	err := execute(root, env)

	assert.ErrorIs(t, err, data.ErrNotFound)
	require.NotNil(t, db)
	assert.Error(t, db.Ping(), "store must be closed after a failing command")
}

func TestParseSets(t *testing.T) {
	got, err := parseSets([]string{"nama_manajer=Andi", "kontak_manajer=a=b", " lokasi =Bogor"})
	require.NoError(t, err)
	assert.Equal(t, []fieldValue{
		{name: "nama_manajer", value: "Andi"},
		{name: "kontak_manajer", value: "a=b"},
		{name: "lokasi", value: "Bogor"},
	}, got)

	_, err = parseSets([]string{"=x"})
	assert.Error(t, err)
}
