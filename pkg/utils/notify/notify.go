package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and color of a message.
type MessageType int

const (
	// ErrorType is printed red with a ✗ symbol.
	ErrorType MessageType = iota
	// WarningType is printed yellow with a ⚠ symbol.
	WarningType
	// ActivityType is printed in the default color with a ► symbol.
	ActivityType
	// SuccessType is printed green with a ✔ symbol.
	SuccessType
	// InfoType is printed blue with an ℹ symbol.
	InfoType
	// TitleType is printed bold, prefixed with an emoji instead of a symbol.
	TitleType
)

// defaultTitleEmoji is used for titles without an explicit emoji.
const defaultTitleEmoji = "ℹ️"

// Message is a notification for the CLI user.
type Message struct {
	Type MessageType
	// Content is the message text. It is used as a format string when Args is non-empty.
	Content string
	Args    []any
	// Emoji replaces the default title emoji. Only used by TitleType.
	Emoji string
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

type style struct {
	symbol string
	color  *fcolor.Color
}

func styleFor(msgType MessageType) style {
	switch msgType {
	case ErrorType:
		return style{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return style{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ActivityType:
		return style{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return style{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case InfoType:
		return style{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)}
	case TitleType:
		return style{symbol: "", color: fcolor.New(fcolor.Reset, fcolor.Bold)}
	default:
		return style{symbol: "", color: fcolor.New(fcolor.Reset)}
	}
}

// Errorf writes an error message.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes an activity message.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// Infof writes an informational message.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a title prefixed with emoji.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{Type: TitleType, Content: format, Args: args, Emoji: emoji, Writer: writer})
}

// WriteMessage renders msg. Continuation lines of multi-line content are
// indented to line up with the text after the symbol.
func WriteMessage(msg Message) {
	writer := msg.Writer
	if writer == nil {
		writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	msgStyle := styleFor(msg.Type)

	var err error

	if msg.Type == TitleType {
		emoji := msg.Emoji
		if emoji == "" {
			emoji = defaultTitleEmoji
		}

		_, err = msgStyle.color.Fprintf(writer, "%s %s\n", emoji, content)
	} else {
		content = indent(content, len([]rune(msgStyle.symbol)))
		_, err = msgStyle.color.Fprintf(writer, "%s%s\n", msgStyle.symbol, content)
	}

	if err != nil {
		// Notifications are best effort; a broken writer must not fail the command.
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

func indent(content string, width int) string {
	if width == 0 || !strings.Contains(content, "\n") {
		return content
	}

	padding := strings.Repeat(" ", width)
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = padding + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
