package ui

import (
	"strings"
	"testing"
)

// TestWrapText_EmptyString 空字符串产出单个空行
func TestWrapText_EmptyString(t *testing.T) {
	lines := WrapText("", 10)

	if len(lines) != 1 {
		t.Fatalf("expected 1 line for empty input, got %d", len(lines))
	}
	if lines[0] != "" {
		t.Errorf("expected empty line, got %q", lines[0])
	}
}

// TestWrapText_ExplicitNewlines 显式换行符优先切分
func TestWrapText_ExplicitNewlines(t *testing.T) {
	lines := WrapText("one\ntwo\nthree", 40)

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	for i, want := range []string{"one", "two", "three"} {
		if lines[i] != want {
			t.Errorf("line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

// TestWrapText_BreaksAtSpace 在预算内最后一个空格处断行
func TestWrapText_BreaksAtSpace(t *testing.T) {
	lines := WrapText("brush your teeth twice", 12)

	for i, line := range lines {
		if len([]rune(line)) > 12 {
			t.Errorf("line %d exceeds column limit: %q", i, line)
		}
	}
	// 不应出现被从中间截断的单词
	joined := strings.Join(lines, " ")
	if joined != "brush your teeth twice" {
		t.Errorf("word sequence changed: %q", joined)
	}
}

// TestWrapText_RoundTrip 换行后重新连接，词序列与输入一致
func TestWrapText_RoundTrip(t *testing.T) {
	inputs := []string{
		"a plaque monster appears",
		"floss is super effective against sticky enemies",
		"hi",
		"one two three four five six seven eight nine ten",
	}

	for _, input := range inputs {
		lines := WrapText(input, 16)
		joined := strings.Join(lines, " ")

		if joined != input {
			t.Errorf("round trip failed for %q: got %q", input, joined)
		}
	}
}

// TestWrapText_LongWordForceSplit 超长单词在预算处硬切，不丢字符
func TestWrapText_LongWordForceSplit(t *testing.T) {
	word := "supercalifragilistic"
	lines := WrapText(word, 5)

	for i, line := range lines {
		if len([]rune(line)) > 5 {
			t.Errorf("line %d exceeds column limit: %q", i, line)
		}
	}
	if strings.Join(lines, "") != word {
		t.Errorf("characters dropped: %v", lines)
	}
}

// TestColumnsForWidth 列预算估算
func TestColumnsForWidth(t *testing.T) {
	// 200px、字号 24、系数 0.5 → 200/12 = 16 列
	if cols := ColumnsForWidth(200, 24); cols != 16 {
		t.Errorf("expected 16 columns, got %d", cols)
	}

	// 预算至少为 1
	if cols := ColumnsForWidth(0, 24); cols != 1 {
		t.Errorf("expected minimum of 1 column, got %d", cols)
	}
	if cols := ColumnsForWidth(100, 0); cols != 1 {
		t.Errorf("expected 1 column for zero font size, got %d", cols)
	}
}
