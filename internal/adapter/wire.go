package adapter

import (
	"encoding/json"
	"errors"
	"fmt"

	m "playground.dev/pkg/playground/internal/model"
)

// Wire commands of the inbound message channel.
const (
	CommandModifyFile    = "modify_file"
	CommandAddProject    = "add_project"
	CommandRemoveProject = "remove_project"
)

var (
	// ErrUnknownCommand is returned for messages with an unsupported command tag.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingRoot is returned for messages without a root_path.
	ErrMissingRoot = errors.New("missing root_path")
)

// Message is one inbound wire message.
type Message struct {
	Command string          `json:"command"`
	Content json.RawMessage `json:"content"`
}

type modifyFileContent struct {
	RootPath string  `json:"root_path"`
	Name     string  `json:"name"`
	Content  *string `json:"content,omitempty"`
}

type addProjectContent struct {
	RootPath string            `json:"root_path"`
	Files    map[string]string `json:"files"`
}

type removeProjectContent struct {
	RootPath string `json:"root_path"`
}

// DecodeMessage parses a raw wire message without interpreting its content.
func DecodeMessage(raw []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}

	return msg, nil
}

// DecodeEvent parses a raw wire message into an event.
func DecodeEvent(raw []byte) (m.Event, error) {
	msg, err := DecodeMessage(raw)
	if err != nil {
		return nil, err
	}

	return msg.Event()
}

// Event interprets the message content according to its command.
func (msg Message) Event() (m.Event, error) {
	switch msg.Command {
	case CommandModifyFile:
		var content modifyFileContent
		if err := msg.decodeContent(&content); err != nil {
			return nil, err
		}

		if content.RootPath == "" {
			return nil, fmt.Errorf("%s: %w", msg.Command, ErrMissingRoot)
		}

		return m.ModifyFile{Root: m.Path(content.RootPath), Name: m.Path(content.Name), Content: content.Content}, nil

	case CommandAddProject:
		var content addProjectContent
		if err := msg.decodeContent(&content); err != nil {
			return nil, err
		}

		if content.RootPath == "" {
			return nil, fmt.Errorf("%s: %w", msg.Command, ErrMissingRoot)
		}

		files := make(m.FileSet, len(content.Files))
		for name, text := range content.Files {
			files[m.Path(name)] = text
		}

		return m.AddProject{Root: m.Path(content.RootPath), Files: files}, nil

	case CommandRemoveProject:
		var content removeProjectContent
		if err := msg.decodeContent(&content); err != nil {
			return nil, err
		}

		if content.RootPath == "" {
			return nil, fmt.Errorf("%s: %w", msg.Command, ErrMissingRoot)
		}

		return m.RemoveProject{Root: m.Path(content.RootPath)}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, msg.Command)
}

func (msg Message) decodeContent(out any) error {
	if len(msg.Content) == 0 {
		return fmt.Errorf("%s: missing content", msg.Command)
	}

	if err := json.Unmarshal(msg.Content, out); err != nil {
		return fmt.Errorf("%s: decode content: %w", msg.Command, err)
	}

	return nil
}

// EncodeEvent builds the wire message for an event.
func EncodeEvent(ev m.Event) (Message, error) {
	var (
		command string
		content any
	)

	switch e := ev.(type) {
	case m.ModifyFile:
		command = CommandModifyFile
		content = modifyFileContent{RootPath: string(e.Root), Name: string(e.Name), Content: e.Content}
	case m.AddProject:
		files := make(map[string]string, len(e.Files))
		for name, text := range e.Files {
			files[string(name)] = text
		}

		command = CommandAddProject
		content = addProjectContent{RootPath: string(e.Root), Files: files}
	case m.RemoveProject:
		command = CommandRemoveProject
		content = removeProjectContent{RootPath: string(e.Root)}
	default:
		return Message{}, fmt.Errorf("%w: %T", ErrUnknownCommand, ev)
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s: %w", command, err)
	}

	return Message{Command: command, Content: raw}, nil
}

// Marshal returns the message as a single JSON line without the newline.
func (msg Message) Marshal() ([]byte, error) {
	return json.Marshal(msg)
}
