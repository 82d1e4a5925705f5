package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// 対話入力の小物。EOFでio.EOFを返してループを終わらせる。
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) readInt64(label string) (int64, error) {
	s, err := p.readLine(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errBadNumber
	}
	return v, nil
}

func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errBadNumber
	}
	return v, nil
}

func (p *prompter) readFloat(label string) (float64, error) {
	s, err := p.readLine(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errBadNumber
	}
	return v, nil
}
