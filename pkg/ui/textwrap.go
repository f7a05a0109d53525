package ui

import "strings"

// avgGlyphWidthRatio 估算平均字形宽度时使用的字号系数
//
// 换行使用固定的假定字符宽度而不是逐字形度量，这是一个已知的
// 近似：对比例字体来说偏保守，个别行可能比理论上能容纳的更短。
const avgGlyphWidthRatio = 0.5

// wrapLookBack 在列预算内向回寻找空格的最大距离
// 超过该距离仍找不到空格时直接在预算处硬切
const wrapLookBack = 24

// ColumnsForWidth 根据面板像素宽度和字号估算每行可容纳的字符数
//
// 至少返回 1，保证调用方永远有一个可用的列预算。
func ColumnsForWidth(pixelWidth int, fontSize float64) int {
	if fontSize <= 0 {
		return 1
	}

	cols := int(float64(pixelWidth) / (fontSize * avgGlyphWidthRatio))
	if cols < 1 {
		cols = 1
	}
	return cols
}

// WrapText 把自由文本按列预算切成多行
//
// 规则：
//   - 先按显式换行符切分；
//   - 每段贪心装填字符，优先在预算内最后一个空格处断行；
//   - 回看窗口内没有空格（超长单词）时在预算处硬切；
//   - 空字符串产出单个空行。
//
// 不丢字符：把结果用空格重新连接，词序列与输入一致
// （输入中不含超过预算的连续非空格串时）。
func WrapText(content string, cols int) []string {
	if cols < 1 {
		cols = 1
	}

	var lines []string
	for _, segment := range strings.Split(content, "\n") {
		lines = append(lines, wrapSegment(segment, cols)...)
	}
	return lines
}

// wrapSegment 对不含换行符的一段文本做贪心换行
func wrapSegment(segment string, cols int) []string {
	runes := []rune(segment)
	if len(runes) <= cols {
		return []string{segment}
	}

	var lines []string
	for len(runes) > cols {
		// 从预算位置向回找最近的空格
		cut := -1
		for pos := cols; pos > 0 && cols-pos < wrapLookBack; pos-- {
			if runes[pos] == ' ' {
				cut = pos
				break
			}
		}

		if cut >= 0 {
			// 断行处的空格本身不进入任何一行
			lines = append(lines, string(runes[:cut]))
			runes = runes[cut+1:]
		} else {
			// 回看窗口内没有空格（超长单词）：硬切
			lines = append(lines, string(runes[:cols]))
			runes = runes[cols:]
		}
	}

	return append(lines, string(runes))
}
