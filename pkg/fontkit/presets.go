package fontkit

// Per-language preferred family names, highest priority first. Windows
// families lead (they are the most specific matches), followed by macOS and
// then common Linux families.
var presetTable = map[Language][]string{
	Chinese: {
		"SimHei",
		"Microsoft YaHei",
		"Microsoft YaHei UI",
		"SimSun",
		"NSimSun",
		"KaiTi",
		"PingFang SC",
		"Hiragino Sans GB",
		"STHeiti",
		"Noto Sans CJK SC",
		"WenQuanYi Micro Hei",
	},
	English: {
		"Segoe UI",
		"Arial",
		"Calibri",
		"Tahoma",
		"Verdana",
		"Consolas",
		"Helvetica Neue",
		"Helvetica",
		"Noto Sans",
		"DejaVu Sans",
		"Liberation Sans",
	},
	Japanese: {
		"Yu Gothic UI",
		"Yu Gothic",
		"Meiryo UI",
		"Meiryo",
		"MS Gothic",
		"MS UI Gothic",
		"Hiragino Kaku Gothic ProN",
		"Hiragino Sans",
		"Noto Sans CJK JP",
		"IPAGothic",
	},
	Korean: {
		"Malgun Gothic",
		"Gulim",
		"Dotum",
		"Batang",
		"Apple SD Gothic Neo",
		"AppleGothic",
		"Noto Sans CJK KR",
		"NanumGothic",
	},
}

// Presets returns the ordered candidate family names for a language. The
// returned slice is a copy; the table itself is never mutated at runtime.
func Presets(lang Language) []string {
	candidates := presetTable[lang]
	result := make([]string, len(candidates))
	copy(result, candidates)
	return result
}
