package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/programme-lv/gradebook/internal/logging"
	"github.com/programme-lv/gradebook/internal/roster"
)

const (
	Banner   = "Student Data Management System!"
	Farewell = "Exiting the system. Goodbye!"
	Invalid  = "Invalid option. Please try again."
)

const menu = `
Choose an option:
1. Add a new student
2. Remove a student
3. Assign student to subject
4. Update a student's grades
5. Display all students
6. Exit
`

const (
	promptChoice  = "Enter your choice: "
	promptAdd     = "Enter student name (use only small and capital Latin letters): "
	promptRemove  = "Enter student name to remove: "
	promptEnroll  = "Enter student and subject (format: StudentName-Subject): "
	promptStudent = "Enter student name: "
	promptGrade   = "Enter subject and grade (format: Subject-Grade): "
)

// Command is a menu choice as typed by the operator.
type Command string

const (
	CmdAdd    Command = "1"
	CmdRemove Command = "2"
	CmdEnroll Command = "3"
	CmdGrade  Command = "4"
	CmdReport Command = "5"
	CmdExit   Command = "6"
)

// errEndOfInput stops the session when the operator input runs out.
var errEndOfInput = errors.New("end of input")

// Console runs the interactive menu over one roster.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	roster *roster.Roster
	log    *slog.Logger
	err    error

	success *color.Color
	notice  *color.Color
	failure *color.Color
}

type Option func(*Console)

func WithLogger(l *slog.Logger) Option {
	return func(c *Console) { c.log = l }
}

// WithColor forces colored results on or off. By default results are
// colored only when stdout is a terminal.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		for _, col := range []*color.Color{c.success, c.notice, c.failure} {
			if enabled {
				col.EnableColor()
			} else {
				col.DisableColor()
			}
		}
	}
}

func New(in io.Reader, out io.Writer, r *roster.Roster, opts ...Option) *Console {
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		roster:  r,
		log:     logging.Discard(),
		success: color.New(color.FgGreen),
		notice:  color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("session", uuid.NewString())
	return c
}

// Run shows the menu and dispatches commands until the operator exits or the
// input ends. It returns the first read or write error, if any.
func (c *Console) Run() error {
	c.log.Debug("session started")
	c.println(Banner)
	for c.err == nil {
		c.print(menu + promptChoice)
		choice, err := c.readLine()
		if err != nil {
			break
		}
		if exit, _ := c.Dispatch(Command(choice)); exit {
			break
		}
	}
	if errors.Is(c.err, errEndOfInput) {
		c.err = nil
		c.println("\n" + Farewell)
	}
	c.log.Debug("session finished", "students", c.roster.Len(), "error", c.err)
	return c.err
}

// Dispatch runs a single menu command. exit is true once the operator chose to leave.
func (c *Console) Dispatch(cmd Command) (exit bool, err error) {
	c.log.Debug("command", "choice", string(cmd))
	switch cmd {
	case CmdAdd:
		c.addStudent()
	case CmdRemove:
		c.removeStudent()
	case CmdEnroll:
		c.enrollStudent()
	case CmdGrade:
		c.recordGrade()
	case CmdReport:
		c.report()
	case CmdExit:
		c.println(Farewell)
		return true, c.err
	default:
		c.println(Invalid)
	}
	return false, c.err
}

func (c *Console) addStudent() {
	name, err := c.prompt(promptAdd)
	if err != nil {
		return
	}
	if err := c.roster.AddStudent(name); err != nil {
		c.reject(err)
		return
	}
	c.log.Debug("student added", "student", name)
	c.succeed(fmt.Sprintf("Student %s added successfully!", name))
}

func (c *Console) removeStudent() {
	name, err := c.prompt(promptRemove)
	if err != nil {
		return
	}
	if err := c.roster.RemoveStudent(name); err != nil {
		c.reject(err)
		return
	}
	c.log.Debug("student removed", "student", name)
	c.succeed(fmt.Sprintf("Student %s removed successfully!", name))
}

func (c *Console) enrollStudent() {
	raw, err := c.prompt(promptEnroll)
	if err != nil {
		return
	}
	e, err := c.roster.EnrollStudent(raw)
	if err != nil {
		c.reject(err)
		return
	}
	c.log.Debug("student enrolled", "student", e.Student, "subject", e.Subject.String())
	c.succeed(fmt.Sprintf("Student %s has successfully enrolled in the %s class.", e.Student, e.Subject))
}

func (c *Console) recordGrade() {
	name, err := c.prompt(promptStudent)
	if err != nil {
		return
	}
	if _, err := c.roster.Lookup(name); err != nil {
		c.reject(err)
		return
	}
	raw, err := c.prompt(promptGrade)
	if err != nil {
		return
	}
	g, err := c.roster.RecordGrade(name, raw)
	if err != nil {
		c.reject(err)
		return
	}
	c.log.Debug("grade recorded", "student", g.Student, "subject", g.Subject.String(), "grade", g.Grade)
	c.succeed(fmt.Sprintf("Grade %s added for %s in %s.", roster.FormatGrade(g.Grade), g.Student, g.Subject))
}

func (c *Console) report() {
	rep := c.roster.Report()
	if _, err := rep.WriteTo(c.out); err != nil && c.err == nil {
		c.err = fmt.Errorf("failed to write report: %w", err)
	}
}

func (c *Console) prompt(text string) (string, error) {
	c.print(text)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	// Lines have no length limit; an unterminated last line still counts.
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		c.err = errEndOfInput
		if !errors.Is(err, io.EOF) {
			c.err = fmt.Errorf("failed to read input: %w", err)
		}
		return "", c.err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (c *Console) reject(err error) {
	var rerr *roster.Error
	if !errors.As(err, &rerr) {
		c.log.Error("unexpected operation error", "error", err)
		c.write(c.failure, err.Error())
		return
	}
	c.log.Debug("input rejected", "kind", rerr.Kind.String(), "student", rerr.Student, "subject", rerr.Subject)
	if rerr.Kind.Notice() {
		c.write(c.notice, rerr.Error())
		return
	}
	c.write(c.failure, rerr.Error())
}

func (c *Console) succeed(msg string) {
	c.write(c.success, msg)
}

func (c *Console) write(col *color.Color, msg string) {
	if c.err != nil {
		return
	}
	if _, err := col.Fprintln(c.out, msg); err != nil {
		c.err = fmt.Errorf("failed to write output: %w", err)
	}
}

func (c *Console) print(s string) {
	if c.err != nil {
		return
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		c.err = fmt.Errorf("failed to write output: %w", err)
	}
}

func (c *Console) println(s string) {
	c.print(s + "\n")
}
