package corrector

import "unicode"

// Армянский алфавит: 'ա'..'ֆ' плюс лигатура 'և'.
const (
	firstLetter  = 'ա'
	AlphabetSize = 39
)

// Раскладка: буква -> клавиши (ряд, столбец). 'ւ' стоит на двух клавишах.
var keyboardLayout = []struct {
	letter    rune
	positions [][2]int
}{
	{'է', [][2]int{{0, 0}}}, {'թ', [][2]int{{0, 1}}}, {'փ', [][2]int{{0, 2}}}, {'ձ', [][2]int{{0, 3}}},
	{'ջ', [][2]int{{0, 4}}}, {'և', [][2]int{{0, 6}}}, {'ր', [][2]int{{0, 7}}}, {'չ', [][2]int{{0, 8}}},
	{'ճ', [][2]int{{0, 9}}}, {'ժ', [][2]int{{0, 11}}},
	{'ք', [][2]int{{1, 0}}}, {'ո', [][2]int{{1, 1}}}, {'ե', [][2]int{{1, 2}}}, {'ռ', [][2]int{{1, 3}}},
	{'տ', [][2]int{{1, 4}}}, {'ը', [][2]int{{1, 5}}}, {'ւ', [][2]int{{0, 5}, {1, 6}}}, {'ի', [][2]int{{1, 7}}},
	{'օ', [][2]int{{1, 8}}}, {'պ', [][2]int{{1, 9}}}, {'խ', [][2]int{{1, 10}}}, {'ծ', [][2]int{{1, 11}}},
	{'շ', [][2]int{{1, 12}}},
	{'ա', [][2]int{{2, 0}}}, {'ս', [][2]int{{2, 1}}}, {'դ', [][2]int{{2, 2}}}, {'ֆ', [][2]int{{2, 3}}},
	{'գ', [][2]int{{2, 4}}}, {'հ', [][2]int{{2, 5}}}, {'յ', [][2]int{{2, 6}}}, {'կ', [][2]int{{2, 7}}},
	{'լ', [][2]int{{2, 8}}},
	{'զ', [][2]int{{3, 0}}}, {'ղ', [][2]int{{3, 1}}}, {'ց', [][2]int{{3, 2}}}, {'վ', [][2]int{{3, 3}}},
	{'բ', [][2]int{{3, 4}}}, {'ն', [][2]int{{3, 5}}}, {'մ', [][2]int{{3, 6}}},
}

// letterGroups lists, for a typed letter, the letters it is commonly confused with.
// Lookups are ordered (typed -> intended) and use the runes as typed.
var letterGroups = map[rune][]rune{
	'բ': {'պ', 'փ'},
	'պ': {'բ', 'փ'},
	'փ': {'բ', 'պ'},
	'գ': {'կ', 'ք'},
	'կ': {'գ', 'ք'},
	'ք': {'գ', 'կ'},
	'դ': {'տ', 'թ'},
	'տ': {'դ', 'թ'},
	'թ': {'դ', 'տ'},
	'ձ': {'ծ', 'ց'},
	'ծ': {'ձ', 'ց'},
	'ց': {'ծ', 'ձ'},
	'ջ': {'ճ', 'չ'},
	'ճ': {'ջ', 'չ'},
	'չ': {'ճ', 'ջ'},
	'ղ': {'խ'},
	'խ': {'ղ'},
	'զ': {'ս'},
	'ս': {'զ'},
	'վ': {'ֆ'},
	'ֆ': {'վ'},
	'ր': {'ռ'},
	'ռ': {'ր'},
	'է': {'ե'},
	'ե': {'է'},
	'օ': {'ո'},
	'ո': {'օ'},
}

func confusable(typed, intended rune) bool {
	for _, r := range letterGroups[typed] {
		if r == intended {
			return true
		}
	}
	return false
}

// ProximityMatrix holds the minimum Manhattan key distance between every pair of letters.
type ProximityMatrix [AlphabetSize][AlphabetSize]int

// BuildProximityMatrix computes the matrix from the fixed keyboard layout.
func BuildProximityMatrix() ProximityMatrix {
	var m ProximityMatrix
	for i := 0; i < len(keyboardLayout); i++ {
		for j := i + 1; j < len(keyboardLayout); j++ {
			a, b := keyboardLayout[i], keyboardLayout[j]
			d := -1
			for _, p := range a.positions {
				for _, q := range b.positions {
					if dist := abs(p[0]-q[0]) + abs(p[1]-q[1]); d < 0 || dist < d {
						d = dist
					}
				}
			}
			ia, ib := letterIndex(a.letter), letterIndex(b.letter)
			m[ia][ib] = d
			m[ib][ia] = d
		}
	}
	return m
}

// Distance returns the key distance between two letters, case-folded.
// ok is false when either rune is outside the Armenian alphabet.
func (m *ProximityMatrix) Distance(a, b rune) (d int, ok bool) {
	ia, ib := letterIndex(unicode.ToLower(a)), letterIndex(unicode.ToLower(b))
	if ia < 0 || ib < 0 {
		return 0, false
	}
	return m[ia][ib], true
}

func letterIndex(r rune) int {
	i := int(r - firstLetter)
	if i < 0 || i >= AlphabetSize {
		return -1
	}
	return i
}
