package judge

import (
	"fmt"
	"strconv"
	"strings"
)

// Language is the numeric language code the UVa submit form expects.
type Language int

const (
	C Language = iota + 1
	Java
	CPP
	Pascal
	CPP11
	Python
)

type languageInfo struct {
	label string
	names []string
}

var languages = map[Language]languageInfo{
	C:      {label: "ANSI C", names: []string{"c", "ansi-c"}},
	Java:   {label: "Java", names: []string{"java"}},
	CPP:    {label: "C++", names: []string{"c++", "cpp"}},
	Pascal: {label: "Pascal", names: []string{"pascal"}},
	CPP11:  {label: "C++11", names: []string{"c++11", "cpp11"}},
	Python: {label: "Python", names: []string{"python", "py"}},
}

// Languages lists the submittable languages in code order.
func Languages() []Language {
	return []Language{C, Java, CPP, Pascal, CPP11, Python}
}

func (l Language) String() string {
	if info, ok := languages[l]; ok {
		return info.label
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Name is the short name accepted by ParseLanguage.
func (l Language) Name() string {
	if info, ok := languages[l]; ok {
		return info.names[0]
	}
	return strconv.Itoa(int(l))
}

func (l Language) Valid() bool {
	_, ok := languages[l]
	return ok
}

// ParseLanguage accepts either a code ("5") or a name ("c++11"), case-insensitively.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		l := Language(n)
		if !l.Valid() {
			return 0, fmt.Errorf("unknown language code %d", n)
		}
		return l, nil
	}
	for l, info := range languages {
		for _, name := range info.names {
			if name == s {
				return l, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown language %q", s)
}
