package documents

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leaseHTML = `<html><head><title>Lease</title><style>p { color: red }</style></head><body>
<h1>LEASE AGREEMENT</h1>
<p>1. Rent</p>
<p>The Tenant shall <b>pay</b>
  Rs. 25,000 per month.</p>
<script>track()</script>
<ul><li>Deposit</li><li>Maintenance</li></ul>
Signed<br>Landlord
</body></html>`

func newDir(t *testing.T) *Dir {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "vendor.txt"), []byte("1. Payment\nNet 30."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lease.html"), []byte(leaseHTML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".DS_Store"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "archive"), 0o755))
	return NewDir(root)
}

func TestHTMLText(t *testing.T) {
	text, err := HTMLText(strings.NewReader(leaseHTML))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"LEASE AGREEMENT",
		"1. Rent",
		"The Tenant shall pay Rs. 25,000 per month.",
		"Deposit",
		"Maintenance",
		"Signed",
		"Landlord",
	}, "\n"), text)
}

func TestDir_List(t *testing.T) {
	docs, err := newDir(t).List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "lease.html", docs[0].Name)
	assert.Equal(t, "vendor.txt", docs[1].Name)
	assert.Equal(t, int64(len("1. Payment\nNet 30.")), docs[1].Size)

	docs, err = NewDir(filepath.Join(t.TempDir(), "missing")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestReadText(t *testing.T) {
	ctx := context.Background()
	d := newDir(t)

	text, err := ReadText(ctx, d, "vendor.txt")
	require.NoError(t, err)
	assert.Equal(t, "1. Payment\nNet 30.", text)

	text, err = ReadText(ctx, d, "lease.html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "LEASE AGREEMENT\n1. Rent\n"))

	_, err = ReadText(ctx, d, "missing.txt")
	assert.True(t, errors.Is(err, ErrNotFound))

	for _, name := range []string{"", ".", "..", "../vendor.txt", "archive/x.txt", `..\vendor.txt`} {
		_, err = ReadText(ctx, d, name)
		assert.True(t, errors.Is(err, ErrInvalidName), "name %q", name)
	}
}

func TestReadText_TooLarge(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.txt"), make([]byte, MaxBytes+1), 0o644))

	_, err := ReadText(context.Background(), NewDir(root), "big.txt")
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestIsHTML(t *testing.T) {
	assert.True(t, IsHTML("a.html"))
	assert.True(t, IsHTML("A.HTM"))
	assert.False(t, IsHTML("a.txt"))
	assert.False(t, IsHTML("html"))
}

func TestNewBucket(t *testing.T) {
	_, err := NewBucket(BucketConfig{Endpoint: "localhost:9000"})
	assert.Error(t, err)

	b, err := NewBucket(BucketConfig{Endpoint: "localhost:9000", Bucket: "contracts", Prefix: "/incoming/"})
	require.NoError(t, err)
	assert.Equal(t, "incoming/lease.txt", b.key("lease.txt"))

	_, err = b.Open(context.Background(), "../secrets")
	assert.True(t, errors.Is(err, ErrInvalidName))
}

func TestNewSource(t *testing.T) {
	src, err := NewSource("", BucketConfig{})
	require.NoError(t, err)
	assert.Nil(t, src)

	src, err = NewSource("/srv/contracts", BucketConfig{})
	require.NoError(t, err)
	assert.IsType(t, &Dir{}, src)

	src, err = NewSource("/srv/contracts", BucketConfig{Endpoint: "localhost:9000", Bucket: "contracts"})
	require.NoError(t, err)
	assert.IsType(t, &Bucket{}, src)
}

func TestReadText_Encodings(t *testing.T) {
	root := t.TempDir()
	write := func(name string, data []byte) {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), data, 0o644))
	}
	// "Rent ₹" as UTF-16LE with a byte order mark.
	write("utf16.txt", []byte{0xFF, 0xFE, 'R', 0, 'e', 0, 'n', 0, 't', 0, ' ', 0, 0xB9, 0x20})
	write("bom.txt", append([]byte{0xEF, 0xBB, 0xBF}, "किराया"...))
	write("cp1252.txt", []byte("Caf\xe9 \x93terms\x94"))
	write("plain.txt", []byte("Cafe\u0301 \u212B"))

	tests := []struct {
		name string
		want string
	}{
		{"utf16.txt", "Rent ₹"},
		{"bom.txt", "किराया"},
		{"cp1252.txt", "Café \u201cterms\u201d"},
		{"plain.txt", "Cafe\u0301 \u212B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ReadText(context.Background(), NewDir(root), tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}
