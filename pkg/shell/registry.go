package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/miajio/keytrie/pkg/registry"
	"github.com/miajio/keytrie/pkg/trie"
)

const menu = `
--- Sistema de Gestion de RUTs ---
1. Agregar RUT
2. Marcar RUT como NO deudor
3. Buscar RUT
4. Borrar RUT
5. Guardar informacion en archivo
6. Salir
7. Cargar informacion desde archivo
Seleccione una opcion: `

// RegistryShell RUT 登记簿菜单界面
type RegistryShell struct {
	engine     *registry.Engine
	outputFile string
	out        io.Writer
	sc         *bufio.Scanner
}

// NewRegistryShell 创建登记簿菜单界面, outputFile 为保存与加载使用的文件
func NewRegistryShell(engine *registry.Engine, outputFile string, out io.Writer) *RegistryShell {
	return &RegistryShell{engine: engine, outputFile: outputFile, out: out}
}

// Run 循环显示菜单, 直到选择退出或输入结束
func (s *RegistryShell) Run(in io.Reader) error {
	s.sc = bufio.NewScanner(in)
	for {
		option, ok := s.prompt(menu)
		if !ok {
			return s.sc.Err()
		}

		switch option {
		case "1":
			s.add()
		case "2":
			s.markNotDebtor()
		case "3":
			s.lookup()
		case "4":
			s.remove()
		case "5":
			s.save()
		case "6":
			fmt.Fprintln(s.out, "Saliendo del programa.")
			return nil
		case "7":
			s.load()
		default:
			fmt.Fprintln(s.out, "Opcion invalida. Intente nuevamente.")
		}
	}
}

// prompt 输出提示并读取一行
func (s *RegistryShell) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

// person 依次读取姓名, 地址与出生日期
func (s *RegistryShell) person(status registry.Status) (registry.Person, bool) {
	name, ok := s.prompt("Nombre: ")
	if !ok {
		return registry.Person{}, false
	}
	address, ok := s.prompt("Direccion: ")
	if !ok {
		return registry.Person{}, false
	}
	dob, ok := s.prompt("Fecha de nacimiento (DD/MM/AAAA): ")
	if !ok {
		return registry.Person{}, false
	}
	return registry.Person{Name: name, Address: address, DateOfBirth: dob, Status: status}, true
}

func (s *RegistryShell) add() {
	rut, ok := s.prompt("Ingrese el RUT (formato 12345678-9): ")
	if !ok {
		return
	}
	p, ok := s.person(registry.Debtor)
	if !ok {
		return
	}
	if _, err := s.engine.Add(rut, p); err != nil {
		s.fail(rut, err)
		return
	}
	fmt.Fprintf(s.out, "RUT %s agregado como deudor.\n", rut)
}

func (s *RegistryShell) markNotDebtor() {
	rut, ok := s.prompt("Ingrese el RUT a marcar como NO deudor (formato 12345678-9): ")
	if !ok {
		return
	}

	_, err := s.engine.MarkNotDebtor(rut)
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "RUT %s marcado como NO deudor.\n", rut)
		return
	case !errors.Is(err, trie.ErrNotFound):
		s.fail(rut, err)
		return
	}

	fmt.Fprintln(s.out, "El RUT no existe. Ingrese los datos para agregarlo.")
	p, ok := s.person(registry.NotDebtor)
	if !ok {
		return
	}
	if _, err := s.engine.Add(rut, p); err != nil {
		s.fail(rut, err)
		return
	}
	fmt.Fprintf(s.out, "RUT %s agregado y marcado como NO deudor.\n", rut)
}

func (s *RegistryShell) lookup() {
	rut, ok := s.prompt("Ingrese el RUT a buscar (formato 12345678-9): ")
	if !ok {
		return
	}
	p, err := s.engine.Lookup(rut)
	if err != nil {
		s.fail(rut, err)
		return
	}
	fmt.Fprintf(s.out, "RUT encontrado.\nNombre: %s\nDireccion: %s\nFecha de nacimiento: %s\nEstado: %s\n",
		p.Name, p.Address, p.DateOfBirth, p.Status)
}

func (s *RegistryShell) remove() {
	rut, ok := s.prompt("Ingrese el RUT a borrar (formato 12345678-9): ")
	if !ok {
		return
	}
	if _, err := s.engine.Remove(rut); err != nil {
		s.fail(rut, err)
		return
	}
	fmt.Fprintf(s.out, "RUT %s borrado del sistema.\n", rut)
}

func (s *RegistryShell) save() {
	if err := s.engine.Save(s.outputFile); err != nil {
		fmt.Fprintf(s.out, "No se pudo abrir el archivo para escribir: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Informacion guardada en '%s'.\n", s.outputFile)
}

func (s *RegistryShell) load() {
	n, err := s.engine.Load(s.outputFile)
	if err != nil {
		fmt.Fprintf(s.out, "No se pudo cargar el archivo: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%d registros cargados desde '%s'.\n", n, s.outputFile)
}

func (s *RegistryShell) fail(rut string, err error) {
	switch {
	case errors.Is(err, trie.ErrNotFound):
		fmt.Fprintln(s.out, "RUT no encontrado.")
	case errors.Is(err, trie.ErrInvalidKey):
		fmt.Fprintf(s.out, "RUT %s invalido.\n", rut)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
