package registry

import "fmt"

// Status 债务状态
type Status int

const (
	NotDebtor Status = iota // 非债务人
	Debtor                  // 债务人
)

func (s Status) String() string {
	if s == Debtor {
		return "Deudor"
	}
	return "No Deudor"
}

// ParseStatus 解析 String 的输出
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Deudor":
		return Debtor, nil
	case "No Deudor":
		return NotDebtor, nil
	}
	return 0, fmt.Errorf("unknown status %q", s)
}

// Person 登记的个人信息
type Person struct {
	Name        string
	Address     string
	DateOfBirth string
	Status      Status
}
