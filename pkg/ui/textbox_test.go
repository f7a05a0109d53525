package ui

import "testing"

// TestTextBox_SetText_Rewraps 换文本只重新换行，面板尺寸不变
func TestTextBox_SetText_Rewraps(t *testing.T) {
	// Face 为 nil 时按回退字号估算列预算，测试不需要真实字体
	box := NewTextBox("hello", 200, 100, PanelStyle{Padding: 5, BorderThickness: 5})

	w, h := box.Size()
	if w != 200 || h != 100 {
		t.Fatalf("expected 200x100, got %dx%d", w, h)
	}
	if box.Text() != "hello" {
		t.Errorf("expected text %q, got %q", "hello", box.Text())
	}

	box.SetText("brush your teeth twice a day to keep the plaque monsters away")
	if len(box.Lines()) < 2 {
		t.Errorf("expected long text to wrap, got %d line(s)", len(box.Lines()))
	}

	// 尺寸在构造时固定，之后不再变化
	if w2, h2 := box.Size(); w2 != w || h2 != h {
		t.Errorf("size changed on SetText: %dx%d -> %dx%d", w, h, w2, h2)
	}
}

// TestNewAutoTextBox_SizedOnce 自适应尺寸只在构造时测量一次
func TestNewAutoTextBox_SizedOnce(t *testing.T) {
	// Face 为 nil 时按回退字号 12 和假定字形宽度 6px 估算
	box := NewAutoTextBox("short\nthe longest line", PanelStyle{Padding: 5, BorderThickness: 5})

	// 最宽行 "the longest line"（16 字符）决定宽度，两行决定高度
	w, h := box.Size()
	wantW := 16*6 + 20
	wantH := 2*14 + 20
	if w != wantW || h != wantH {
		t.Fatalf("expected %dx%d, got %dx%d", wantW, wantH, w, h)
	}
	if len(box.Lines()) != 2 {
		t.Fatalf("expected 2 lines, got %v", box.Lines())
	}

	// 换更长的文本：只重新换行，面板不变大
	box.SetText("a much longer text that would not have fit the initial measurement at all")
	if w2, h2 := box.Size(); w2 != w || h2 != h {
		t.Errorf("size changed on SetText: %dx%d -> %dx%d", w, h, w2, h2)
	}
	if len(box.Lines()) < 2 {
		t.Errorf("expected long text to wrap, got %d line(s)", len(box.Lines()))
	}
}

// TestTextBox_ExplicitNewlines 显式换行符保留
func TestTextBox_ExplicitNewlines(t *testing.T) {
	box := NewTextBox("line one\nline two", 400, 100, PanelStyle{})

	lines := box.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "line one" || lines[1] != "line two" {
		t.Errorf("unexpected lines: %v", lines)
	}
}
