// Package console implementa o menu interativo de 6 opções sobre os
// casos de uso de clientes.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
	ucClient "github.com/BruksfildServices01/axanet-clients/internal/usecase/client"
	"github.com/BruksfildServices01/axanet-clients/internal/validators"
)

const rule = "=================================================="

type UseCases struct {
	Create     *ucClient.CreateClient
	View       *ucClient.ViewClient
	List       *ucClient.ListClients
	AddService *ucClient.AddService
	Delete     *ucClient.DeleteClient
}

type Menu struct {
	in    *bufio.Scanner
	out   io.Writer
	uc    UseCases
	actor ucClient.Actor

	// CheckEmail, quando definido, só gera um aviso; nunca bloqueia.
	CheckEmail func(ctx context.Context, email string) bool
}

func NewMenu(in io.Reader, out io.Writer, uc UseCases) *Menu {
	return &Menu{
		in:    bufio.NewScanner(in),
		out:   out,
		uc:    uc,
		actor: ucClient.Actor{Operator: ucClient.ConsoleOperator},
	}
}

// Run executa o laço até a opção 6, EOF na entrada ou ctx cancelado.
func (m *Menu) Run(ctx context.Context) error {
	m.println("Bienvenido al Sistema de Gestión de Clientes de Axanet")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showMenu()
		option, ok := m.prompt("Seleccione una opción (1-6): ")
		if !ok {
			return m.in.Err()
		}

		switch option {
		case "1":
			m.createClient(ctx)
		case "2":
			m.viewClient(ctx)
		case "3":
			m.listClients(ctx)
		case "4":
			m.addService(ctx)
		case "5":
			m.deleteClient(ctx)
		case "6":
			m.println("¡Gracias por usar el Sistema de Gestión de Clientes de Axanet!")
			return nil
		default:
			m.println("Opción no válida. Por favor, seleccione una opción del 1 al 6.")
		}

		if _, ok := m.prompt("\nPresione Enter para continuar..."); !ok {
			return m.in.Err()
		}
	}
}

func (m *Menu) showMenu() {
	m.println("\n" + rule)
	m.println("    SISTEMA DE GESTIÓN DE CLIENTES - AXANET")
	m.println(rule)
	m.println("1. Crear nuevo cliente")
	m.println("2. Visualizar información de un cliente")
	m.println("3. Listar todos los clientes")
	m.println("4. Agregar servicio a cliente existente")
	m.println("5. Eliminar cliente")
	m.println("6. Salir")
	m.println(strings.Repeat("-", len(rule)))
}

// --------------------------------------------------
// Actions
// --------------------------------------------------

func (m *Menu) createClient(ctx context.Context) {
	m.println("\n--- CREAR NUEVO CLIENTE ---")

	name, _ := m.prompt("Nombre del cliente: ")
	if name == "" {
		m.println("Error: El nombre no puede estar vacío.")
		return
	}

	if exists, err := m.uc.View.Exists(ctx, name); err != nil {
		m.reportError(name, err)
		return
	} else if exists {
		m.printf("Error: Ya existe un cliente con el nombre '%s'.\n", name)
		return
	}

	phone, _ := m.prompt("Teléfono: ")
	email, _ := m.prompt("Correo electrónico: ")
	m.warnEmail(ctx, email)
	service, _ := m.prompt("Descripción del primer servicio: ")

	out, err := m.uc.Create.Execute(ctx, ucClient.CreateClientInput{
		Name:         name,
		Phone:        phone,
		Email:        email,
		FirstService: service,
		Actor:        m.actor,
	})
	if err != nil {
		m.reportError(name, err)
		return
	}

	m.printf("\nCliente '%s' creado exitosamente.\n", out.Record.Name)
	m.printf("Archivo: %s\n", out.FileName)
}

func (m *Menu) viewClient(ctx context.Context) {
	m.println("\n--- VISUALIZAR CLIENTE ---")
	if m.empty(ctx) {
		return
	}

	name, _ := m.prompt("Nombre del cliente a visualizar: ")
	out, err := m.uc.View.Execute(ctx, name)
	if err != nil {
		m.reportError(name, err)
		return
	}

	m.printf("\n--- INFORMACIÓN DE %s ---\n", strings.ToUpper(name))
	m.println(out.Raw)
}

func (m *Menu) listClients(ctx context.Context) {
	m.println("\n--- LISTA DE TODOS LOS CLIENTES ---")

	clients, err := m.uc.List.Execute(ctx)
	if err != nil {
		m.reportError("", err)
		return
	}
	if len(clients) == 0 {
		m.println("No hay clientes registrados.")
		return
	}

	for i, c := range clients {
		m.printf("%d. %s (Archivo: %s)\n", i+1, c.Name, c.File)
	}
}

func (m *Menu) addService(ctx context.Context) {
	m.println("\n--- AGREGAR SERVICIO A CLIENTE ---")
	if m.empty(ctx) {
		return
	}

	name, _ := m.prompt("Nombre del cliente: ")
	// lê a ficha antes de pedir a descrição: índice e arquivo precisam existir
	if _, err := m.uc.View.Execute(ctx, name); err != nil {
		m.reportError(name, err)
		return
	}

	description, _ := m.prompt("Descripción del nuevo servicio: ")
	if _, err := m.uc.AddService.Execute(ctx, m.actor, name, description); err != nil {
		m.reportError(name, err)
		return
	}

	m.printf("\nNuevo servicio agregado al cliente '%s'.\n", name)
}

func (m *Menu) deleteClient(ctx context.Context) {
	m.println("\n--- ELIMINAR CLIENTE ---")
	if m.empty(ctx) {
		return
	}

	name, _ := m.prompt("Nombre del cliente a eliminar: ")
	if exists, err := m.uc.View.Exists(ctx, name); err != nil || !exists {
		if err == nil {
			err = domain.ErrNotFound
		}
		m.reportError(name, err)
		return
	}

	answer, _ := m.prompt(fmt.Sprintf("¿Está seguro de que desea eliminar al cliente '%s'? (s/n): ", name))
	confirmed := strings.ToLower(answer) == "s"

	if err := m.uc.Delete.Execute(ctx, m.actor, name, confirmed); err != nil {
		m.reportError(name, err)
		return
	}

	m.printf("Cliente '%s' eliminado exitosamente.\n", name)
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (m *Menu) reportError(name string, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		m.println("Error: El nombre no puede estar vacío.")
	case errors.Is(err, domain.ErrInvalidName):
		m.printf("Error: El nombre '%s' contiene caracteres no permitidos.\n", name)
	case errors.Is(err, domain.ErrAlreadyExists):
		m.printf("Error: Ya existe un cliente con el nombre '%s'.\n", name)
	case errors.Is(err, domain.ErrNotFound):
		m.printf("Error: No se encontró el cliente '%s'.\n", name)
	case errors.Is(err, domain.ErrFileMissing):
		m.println("Error: No se pudo encontrar el archivo del cliente.")
	case errors.Is(err, domain.ErrCancelled):
		m.println("Eliminación cancelada.")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		m.println("Operación interrumpida.")
	default:
		m.printf("Error: %v\n", err)
	}
}

// warnEmail avisa sobre formato e, se configurado, sobre o domínio.
func (m *Menu) warnEmail(ctx context.Context, email string) {
	if email == "" {
		return
	}
	if !validators.LooksLikeEmail(email) {
		m.println("Aviso: el correo no tiene un formato válido.")
		return
	}
	if m.CheckEmail != nil && !m.CheckEmail(ctx, email) {
		m.println("Aviso: el dominio del correo no parece válido.")
	}
}

func (m *Menu) empty(ctx context.Context) bool {
	clients, err := m.uc.List.Execute(ctx)
	if err != nil {
		m.reportError("", err)
		return true
	}
	if len(clients) == 0 {
		m.println("No hay clientes registrados.")
		return true
	}
	return false
}

// prompt escreve o rótulo e lê uma linha já sem espaços nas pontas.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
