package tsc

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/tsrun/internal/core/domain"
)

var diagnosticLine = regexp.MustCompile(`^(?:(.+)\((\d+),(\d+)\): )?(error|warning|message) TS(\d+): (.*)$`)

// parseOutput reads `tsc --pretty false` output. Diagnostics are grouped by canonical file
// path; global diagnostics are stored under "".
func parseOutput(output, dir string) map[string][]domain.Diagnostic {
	byFile := make(map[string][]domain.Diagnostic)

	var (
		last  *domain.Diagnostic
		lastF string
	)
	flush := func() {
		if last != nil {
			byFile[lastF] = append(byFile[lastF], *last)
			last = nil
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.HasPrefix(line, "  ") && last != nil {
			last.Message += "\n" + line
			continue
		}

		m := diagnosticLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		flush()

		code, _ := strconv.Atoi(m[5])
		d := domain.Diagnostic{
			Code:     code,
			Category: category(m[4]),
			Kind:     domain.KindSemantic,
			Message:  m[6],
		}
		if m[1] != "" {
			d.File = domain.Canonicalize(dir, m[1])
			d.Line, _ = strconv.Atoi(m[2])
			d.Column, _ = strconv.Atoi(m[3])
		}
		last, lastF = &d, d.File
	}
	flush()

	return byFile
}

func category(s string) domain.Category {
	switch s {
	case "warning":
		return domain.CategoryWarning
	case "message":
		return domain.CategoryMessage
	default:
		return domain.CategoryError
	}
}
