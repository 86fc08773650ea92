package huffman

import (
	"strings"
	"testing"
)

func makeTestFrequencies() Frequencies {
	var freq Frequencies
	copy(freq[:], []uint64{5, 9, 12, 13, 16, 45})
	freq[PseudoEOF] = 1
	return freq
}

func makeFibonacciFrequencies(n int) Frequencies {
	var freq Frequencies
	a, b := uint64(1), uint64(1)
	for i := 0; i < n; i++ {
		a, b = b, a+b
		freq[i] = a
	}
	freq[PseudoEOF] = 1
	return freq
}

func dumpCodes(t *testing.T, codes *CodeTable) string {
	t.Helper()
	var buf strings.Builder
	if _, err := codes.Dump(&buf); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	return buf.String()
}

func TestBuildTree(t *testing.T) {
	root := BuildTree(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tNode weight=101\n",
		"\t\tLeaf(5) weight=45\n",
		"\t\tNode weight=56\n",
		"\t\t\tNode weight=25\n",
		"\t\t\t\tLeaf(2) weight=12\n",
		"\t\t\t\tLeaf(3) weight=13\n",
		"\t\t\tNode weight=31\n",
		"\t\t\t\tNode weight=15\n",
		"\t\t\t\t\tNode weight=6\n",
		"\t\t\t\t\t\tLeaf(256) weight=1\n",
		"\t\t\t\t\t\tLeaf(0) weight=5\n",
		"\t\t\t\t\tLeaf(1) weight=9\n",
		"\t\t\t\tLeaf(4) weight=16\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if root.NumLeaves() != 7 {
		t.Errorf("wrong leaf count: expect 7, got %d", root.NumLeaves())
	}
}

func TestMakeCodeTable(t *testing.T) {
	codes, err := MakeCodeTable(BuildTree(makeTestFrequencies()))
	if err != nil {
		t.Fatalf("MakeCodeTable failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tEncode(0) = \"11001\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"\tEncode(256) = \"11000\"\n",
		"}\n",
	}, "")
	actualDump := dumpCodes(t, &codes)
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	var freq Frequencies
	freq['a'] = 1
	freq['b'] = 1
	freq[PseudoEOF] = 1

	codes, err := MakeCodeTable(BuildTree(freq))
	if err != nil {
		t.Fatalf("MakeCodeTable failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tEncode(97) = \"10\"\n",
		"\tEncode(98) = \"11\"\n",
		"\tEncode(256) = \"0\"\n",
		"}\n",
	}, "")
	actualDump := dumpCodes(t, &codes)
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_EmptyInput(t *testing.T) {
	var freq Frequencies
	freq[PseudoEOF] = 1
	root := BuildTree(freq)

	if root.IsLeaf() || root.NumLeaves() != 2 {
		t.Fatalf("expected a two-leaf tree, got %d leaves", root.NumLeaves())
	}
	if root.Left.Symbol != PseudoEOF || root.Left.Weight != 1 {
		t.Errorf("left leaf: expect PseudoEOF with weight 1, got %d with weight %d", root.Left.Symbol, root.Left.Weight)
	}
	if root.Right.Symbol != 0 || root.Right.Weight != 0 {
		t.Errorf("right leaf: expect symbol 0 with weight 0, got %d with weight %d", root.Right.Symbol, root.Right.Weight)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	var freq Frequencies
	freq['A'] = 1000
	freq[PseudoEOF] = 1

	codes, err := MakeCodeTable(BuildTree(freq))
	if err != nil {
		t.Fatalf("MakeCodeTable failed: %v", err)
	}
	if codes.Len() != 2 {
		t.Errorf("expected 2 codes, got %d", codes.Len())
	}
	if hc, _ := codes.Lookup('A'); hc != MakeCode(1, 1) {
		t.Errorf("wrong code for 'A': %s", hc)
	}
	if hc, _ := codes.Lookup(PseudoEOF); hc != MakeCode(1, 0) {
		t.Errorf("wrong code for PseudoEOF: %s", hc)
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	freq := makeFibonacciFrequencies(40)
	for symbol := 100; symbol < 256; symbol++ {
		freq[symbol] = uint64(symbol % 7)
	}
	a := BuildTree(freq)
	b := BuildTree(freq)
	if !a.SameShape(b) {
		t.Errorf("two builds from the same frequencies differ")
	}
}

func checkPrefixFree(t *testing.T, codes *CodeTable) {
	t.Helper()
	for i := range codes {
		if codes[i].Size == 0 {
			continue
		}
		for j := range codes {
			if i == j || codes[j].Size == 0 {
				continue
			}
			if codes[i].HasPrefix(codes[j]) {
				t.Errorf("code %s for %d has prefix %s for %d", codes[i], i, codes[j], j)
			}
		}
	}
}

func TestMakeCodeTable_PrefixFree(t *testing.T) {
	type testRow struct {
		name    string
		freq    Frequencies
		leaves  int
		maxSize uint16
	}

	var allOnce Frequencies
	for i := range allOnce {
		allOnce[i] = 1
	}

	testData := [...]testRow{
		{name: "all-once", freq: allOnce, leaves: NumSymbols, maxSize: 9},
		{name: "fibonacci", freq: makeFibonacciFrequencies(80), leaves: 81, maxSize: 80},
		{name: "textbook", freq: makeTestFrequencies(), leaves: 7, maxSize: 5},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			root := BuildTree(row.freq)
			if root.NumLeaves() != row.leaves {
				t.Errorf("wrong leaf count: expect %d, got %d", row.leaves, root.NumLeaves())
			}
			codes, err := MakeCodeTable(root)
			if err != nil {
				t.Fatalf("MakeCodeTable failed: %v", err)
			}
			if codes.Len() != row.leaves {
				t.Errorf("wrong code count: expect %d, got %d", row.leaves, codes.Len())
			}
			var maxSize uint16
			for _, hc := range codes {
				if hc.Size > maxSize {
					maxSize = hc.Size
				}
			}
			if maxSize != row.maxSize {
				t.Errorf("wrong longest code: expect %d, got %d", row.maxSize, maxSize)
			}
			checkPrefixFree(t, &codes)
		})
	}
}

func TestMakeCodeTable_OneChild(t *testing.T) {
	root := &Node{
		Symbol: InvalidSymbol,
		Left:   NewLeaf('x', 1),
		Right: &Node{
			Symbol: InvalidSymbol,
			Left:   NewLeaf(PseudoEOF, 1),
		},
	}
	_, err := MakeCodeTable(root)
	if !IsInvariantError(err) {
		t.Errorf("expected invariant error, got %v", err)
	}
}
