package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Separator 记录块之间的分隔行
const Separator = "---------------------------------------"

// 字段标签, 顺序即输出顺序
const (
	labelRUT         = "RUT"
	labelName        = "Nombre"
	labelAddress     = "Direccion"
	labelDateOfBirth = "Fecha de Nacimiento"
	labelStatus      = "Estado"
)

// ErrMalformed 文本格式错误
var ErrMalformed = errors.New("malformed registry record")

// writeRecord 输出一条记录的字段行, 不含分隔行
func writeRecord(w io.Writer, rut string, p Person) error {
	_, err := fmt.Fprintf(w, "%s: %s\n%s: %s\n%s: %s\n%s: %s\n%s: %s\n",
		labelRUT, rut,
		labelName, p.Name,
		labelAddress, p.Address,
		labelDateOfBirth, p.DateOfBirth,
		labelStatus, p.Status,
	)
	return err
}

// Encode 按 RUT 顺序输出所有记录块
func (r *Registry) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for rut, p := range r.Entries() {
		if err := writeRecord(bw, rut, p); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, Separator); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// recordParser 逐行累积一个记录块的字段
type recordParser struct {
	fields map[string]string
}

func (rp *recordParser) reset() { rp.fields = make(map[string]string, 5) }

func (rp *recordParser) empty() bool { return len(rp.fields) == 0 }

func (rp *recordParser) line(s string) error {
	label, value, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("%w: unexpected line %q", ErrMalformed, s)
	}
	switch label {
	case labelRUT, labelName, labelAddress, labelDateOfBirth, labelStatus:
	default:
		return fmt.Errorf("%w: unknown field %q", ErrMalformed, label)
	}
	if _, dup := rp.fields[label]; dup {
		return fmt.Errorf("%w: duplicate field %q", ErrMalformed, label)
	}
	rp.fields[label] = strings.TrimPrefix(value, " ")
	return nil
}

func (rp *recordParser) record() (string, Person, error) {
	for _, label := range []string{labelRUT, labelName, labelAddress, labelDateOfBirth, labelStatus} {
		if _, ok := rp.fields[label]; !ok {
			return "", Person{}, fmt.Errorf("%w: missing field %q", ErrMalformed, label)
		}
	}
	status, err := ParseStatus(rp.fields[labelStatus])
	if err != nil {
		return "", Person{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return rp.fields[labelRUT], Person{
		Name:        rp.fields[labelName],
		Address:     rp.fields[labelAddress],
		DateOfBirth: rp.fields[labelDateOfBirth],
		Status:      status,
	}, nil
}

// Decode 读取 Encode 的输出并登记 (覆盖已有记录), 返回读取的记录数.
// 输入须整体合法才会写入; 出错时 r 保持不变.
func (r *Registry) Decode(rd io.Reader) (int, error) {
	staged := New()
	n, err := staged.decode(rd)
	if err != nil {
		return 0, err
	}
	r.merge(staged)
	return n, nil
}

// merge 用 src 中的记录覆盖 r
func (r *Registry) merge(src *Registry) {
	for rut, p := range src.Entries() {
		_, _ = r.people.Put(rut, p) // 键已规范化
	}
}

func (r *Registry) decode(rd io.Reader) (int, error) {
	sc := bufio.NewScanner(rd)
	var rp recordParser
	rp.reset()

	n, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case line == Separator:
			rut, p, err := rp.record()
			if err != nil {
				return n, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if _, err := r.Add(rut, p); err != nil {
				return n, fmt.Errorf("line %d: %w", lineNo, err)
			}
			n++
			rp.reset()
		case line == "" && rp.empty():
		default:
			if err := rp.line(line); err != nil {
				return n, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return n, err
	}
	if !rp.empty() {
		return n, fmt.Errorf("%w: unterminated record at end of input", ErrMalformed)
	}
	return n, nil
}

// decodeRecord 解析单个不含分隔行的记录块
func decodeRecord(block string) (string, Person, error) {
	var rp recordParser
	rp.reset()
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		if err := rp.line(line); err != nil {
			return "", Person{}, err
		}
	}
	return rp.record()
}

// SaveFile 将登记簿完整写入文件, 覆盖原有内容
func (r *Registry) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile 从文件读取记录并登记
func (r *Registry) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return r.Decode(f)
}
