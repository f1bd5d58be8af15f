package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/miajio/keytrie/pkg/dictionary"
	"github.com/miajio/keytrie/pkg/trie"
)

// DictionaryShell 字典交互界面
//
// 每行输入按第一个空格切分为单词与翻译: 有翻译时插入, 否则查询.
// 以 '-' 开头的行删除单词, 以 '?' 开头的行逐词翻译一段文本,
// '>' 与 '<' 后接文件路径, 分别导出与导入字典.
type DictionaryShell struct {
	engine *dictionary.Engine
	out    io.Writer
}

// NewDictionaryShell 创建字典交互界面
func NewDictionaryShell(engine *dictionary.Engine, out io.Writer) *DictionaryShell {
	return &DictionaryShell{engine: engine, out: out}
}

// Run 逐行处理输入直到 EOF
func (s *DictionaryShell) Run(in io.Reader) error {
	fmt.Fprintln(s.out, "Ingrese palabras y traducciones (palabra traduccion), o solo una palabra para buscar:")

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "-"):
			s.remove(strings.TrimSpace(line[1:]))
		case strings.HasPrefix(line, "?"):
			s.translate(line[1:])
		case strings.HasPrefix(line, ">"):
			s.export(strings.TrimSpace(line[1:]))
		case strings.HasPrefix(line, "<"):
			s.load(strings.TrimSpace(line[1:]))
		default:
			s.handle(line)
		}
	}
	return sc.Err()
}

func (s *DictionaryShell) handle(line string) {
	word, translations, ok := dictionary.ParseLine(line)
	if !ok {
		s.lookup(word)
		return
	}

	if _, err := s.engine.AddWord(word, translations); err != nil {
		s.fail(word, err)
		return
	}
	fmt.Fprintf(s.out, "Palabra '%s' agregada con traduccion '%s'.\n", word, translations)
}

func (s *DictionaryShell) lookup(word string) {
	translations, err := s.engine.Lookup(word)
	if err != nil {
		s.fail(word, err)
		return
	}
	fmt.Fprintf(s.out, "%s -> %s\n", word, translations)
}

func (s *DictionaryShell) remove(word string) {
	if err := s.engine.RemoveWord(word); err != nil {
		s.fail(word, err)
		return
	}
	fmt.Fprintf(s.out, "Palabra '%s' eliminada.\n", word)
}

func (s *DictionaryShell) translate(text string) {
	var parts []string
	for _, tr := range s.engine.Translate(text) {
		if tr.Found {
			parts = append(parts, fmt.Sprintf("%s(%s)", tr.Token, strings.Join(tr.Translations, "/")))
		} else {
			parts = append(parts, tr.Token+"(?)")
		}
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))
}

func (s *DictionaryShell) export(path string) {
	if err := s.engine.Export(path); err != nil {
		fmt.Fprintf(s.out, "Error al guardar: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Diccionario guardado en '%s'.\n", path)
}

func (s *DictionaryShell) load(path string) {
	n, err := s.engine.Import(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error al cargar: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%d palabras cargadas desde '%s'.\n", n, path)
}

func (s *DictionaryShell) fail(word string, err error) {
	switch {
	case errors.Is(err, trie.ErrNotFound):
		fmt.Fprintf(s.out, "La palabra '%s' no se encuentra en el diccionario.\n", word)
	case errors.Is(err, trie.ErrInvalidKey):
		fmt.Fprintf(s.out, "Palabra '%s' invalida: solo se permiten letras A-Z.\n", word)
	case errors.Is(err, dictionary.ErrNoTranslations):
		fmt.Fprintf(s.out, "Palabra '%s' sin traducciones.\n", word)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
