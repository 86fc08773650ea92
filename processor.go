package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Debug levels for Processor.DebugLevel.
const (
	DebugLow  = 1
	DebugHigh = 4
)

// Processor compresses and decompresses streams in the tree-header format.
// The zero value is ready to use and silent.
type Processor struct {
	// DebugLevel selects how much is reported to Logger: at DebugLow, one
	// line per operation; at DebugHigh, also the tree and code table.
	DebugLevel int

	// Logger receives diagnostics.  Failures are always reported to it.
	// If nil, nothing is reported.
	Logger Logger
}

// Stats reports how many bytes an operation consumed and produced.
type Stats struct {
	BytesIn  int64
	BytesOut int64
}

// Ratio returns BytesOut as a percentage of BytesIn.
func (s Stats) Ratio() float64 {
	if s.BytesIn == 0 {
		return 0
	}
	return float64(s.BytesOut) / float64(s.BytesIn) * 100
}

// String returns the string representation of these Stats.
func (s Stats) String() string {
	return fmt.Sprintf("%d bytes in, %d bytes out (%.2f%%)", s.BytesIn, s.BytesOut, s.Ratio())
}

// Compress reads in twice, once to count byte frequencies and once more
// from the start to encode it, and writes the compressed stream to out.
//
// The output is flushed on every return path, but on error its content is
// not meaningful.
//
func (p *Processor) Compress(in io.ReadSeeker, out io.Writer) (stats Stats, err error) {
	defer func() {
		p.report("compress", stats, err)
	}()

	freq, err := CountFrequencies(in)
	if err != nil {
		return stats, err
	}
	stats.BytesIn = int64(freq.Total() - freq[PseudoEOF])

	root := BuildTree(freq)
	codes, err := MakeCodeTable(root)
	if err != nil {
		return stats, err
	}
	p.dumpTree(root)
	p.dumpCodes(&codes)

	cw := &countingWriter{w: out}
	bw := bitio.NewWriter(cw)
	defer func() {
		if cerr := bw.Close(); err == nil {
			err = cerr
		}
		stats.BytesOut = cw.n
	}()

	if err = bw.WriteBits(uint64(HeaderMagic), BitsPerInt); err != nil {
		return stats, err
	}
	if err = WriteHeader(bw, root); err != nil {
		return stats, err
	}

	if _, err = in.Seek(0, io.SeekStart); err != nil {
		return stats, err
	}
	err = EncodeStream(&codes, in, bw)
	return stats, err
}

// Decompress reads a compressed stream from in and writes the original
// bytes to out.  If in does not start with HeaderMagic, nothing is written.
func (p *Processor) Decompress(in io.Reader, out io.Writer) (stats Stats, err error) {
	defer func() {
		p.report("decompress", stats, err)
	}()

	cr := &countingReader{r: in}
	br := bitio.NewReader(cr)
	defer func() {
		stats.BytesIn = cr.n
	}()

	magic, err := br.ReadBits(BitsPerInt)
	if err != nil {
		return stats, formatErrorf(err, "stream too short for magic number")
	}
	if uint32(magic) != HeaderMagic {
		return stats, errors.Wrapf(ErrFormat, "illegal header starts with %#08x", magic)
	}

	root, err := ReadHeader(br)
	if err != nil {
		return stats, err
	}
	p.dumpTree(root)

	cw := &countingWriter{w: out}
	err = DecodeStream(root, br, cw)
	stats.BytesOut = cw.n
	return stats, err
}

func (p *Processor) report(op string, stats Stats, err error) {
	if p.Logger == nil {
		return
	}
	if err != nil {
		p.Logger.Errorf("%s failed: %v", op, err)
		return
	}
	if p.DebugLevel >= DebugLow {
		p.Logger.Infof("%s: %v", op, stats)
	}
}

func (p *Processor) dumpTree(root *Node) {
	if p.Logger == nil || p.DebugLevel < DebugHigh {
		return
	}
	var sb strings.Builder
	_, _ = root.Dump(&sb)
	p.Logger.Infof("%d leaves, %d header bits\n%s", root.NumLeaves(), HeaderSize(root), sb.String())
}

func (p *Processor) dumpCodes(codes *CodeTable) {
	if p.Logger == nil || p.DebugLevel < DebugHigh {
		return
	}
	var sb strings.Builder
	_, _ = codes.Dump(&sb)
	p.Logger.Infof("%d codes\n%s", codes.Len(), sb.String())
}

var defaultProcessor Processor

// Compress compresses in to out with a silent Processor.
func Compress(in io.ReadSeeker, out io.Writer) error {
	_, err := defaultProcessor.Compress(in, out)
	return err
}

// Decompress decompresses in to out with a silent Processor.
func Decompress(in io.Reader, out io.Writer) error {
	_, err := defaultProcessor.Decompress(in, out)
	return err
}

// CompressBytes returns the compressed form of data.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes returns the original bytes of a compressed stream.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
