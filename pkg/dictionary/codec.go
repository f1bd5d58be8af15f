package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseLine 将一行输入切分为单词与翻译.
// 以第一个空格为界; 没有翻译部分时 ok 为 false, 表示这是一次查询.
func ParseLine(line string) (word, translations string, ok bool) {
	line = strings.TrimSpace(line)
	word, rest, found := strings.Cut(line, " ")
	if !found {
		return word, "", false
	}
	rest = strings.TrimLeft(rest, " ")
	return word, rest, rest != ""
}

// Encode 每个单词输出一行 "WORD t1,t2", 格式与 ParseLine 一致
func (d *Dictionary) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for word, translations := range d.Entries() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", word, translations); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode 读取 Encode 的输出并合并到字典, 返回读取的条目数.
// 输入须整体合法才会合并; 出错时 d 保持不变.
func (d *Dictionary) Decode(r io.Reader) (int, error) {
	staged := New()
	n, err := staged.decode(r)
	if err != nil {
		return 0, err
	}
	for word, translations := range staged.Entries() {
		if _, _, err := d.Add(word, translations); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (d *Dictionary) decode(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	n, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		word, translations, ok := ParseLine(sc.Text())
		if !ok {
			return n, fmt.Errorf("line %d: %w for %q", lineNo, ErrNoTranslations, word)
		}
		if _, _, err := d.Add(word, translations); err != nil {
			return n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		n++
	}
	return n, sc.Err()
}

// SaveFile 将字典完整写入文件, 覆盖原有内容
func (d *Dictionary) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile 从文件读取单词并合并到字典
func (d *Dictionary) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return d.Decode(f)
}
