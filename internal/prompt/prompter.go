package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

const (
	lineFeedConstant       = "\n"
	carriageReturnConstant = "\r"
	lineDelimiterConstant  = '\n'
)

type lineResult struct {
	line string
	err  error
}

// Prompter writes prompts and reads answers one line at a time.
// A read abandoned because of cancellation is delivered to the next ReadLine call.
type Prompter struct {
	reader  *bufio.Reader
	writer  io.Writer
	pending chan lineResult
}

// NewPrompter constructs a Prompter over the provided input and output.
func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(input), writer: output}
}

// Write emits text without a trailing newline.
func (prompter *Prompter) Write(text string) error {
	if prompter.writer == nil {
		return nil
	}
	_, writeError := io.WriteString(prompter.writer, text)
	return writeError
}

// WriteLine emits text followed by a newline.
func (prompter *Prompter) WriteLine(text string) error {
	return prompter.Write(text + lineFeedConstant)
}

// ReadLine writes the prompt and waits for one line of input without its terminator.
// It returns ErrInterrupted when the context ends first and ErrInputClosed when input is exhausted.
func (prompter *Prompter) ReadLine(executionContext context.Context, prompt string) (string, error) {
	if executionContext.Err() != nil {
		return "", ErrInterrupted
	}
	if writeError := prompter.Write(prompt); writeError != nil {
		return "", writeError
	}

	if prompter.pending == nil {
		prompter.pending = make(chan lineResult, 1)
		go prompter.readInto(prompter.pending)
	}

	select {
	case <-executionContext.Done():
		return "", ErrInterrupted
	case result := <-prompter.pending:
		prompter.pending = nil
		return interpretLine(result)
	}
}

func (prompter *Prompter) readInto(results chan<- lineResult) {
	line, readError := prompter.reader.ReadString(lineDelimiterConstant)
	results <- lineResult{line: line, err: readError}
}

func interpretLine(result lineResult) (string, error) {
	if result.err != nil {
		if !errors.Is(result.err, io.EOF) {
			return "", result.err
		}
		if len(result.line) == 0 {
			return "", ErrInputClosed
		}
	}
	line := strings.TrimSuffix(result.line, lineFeedConstant)
	return strings.TrimSuffix(line, carriageReturnConstant), nil
}
