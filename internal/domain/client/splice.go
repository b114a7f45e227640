package client

import "strings"

// SpliceService insere a linha do serviço logo abaixo do primeiro
// cabeçalho SERVICIOS:, deixando o resto do arquivo intacto. Sem
// cabeçalho, uma seção nova é anexada ao final.
func SpliceService(content []byte, serviceLine string) []byte {
	lines := splitKeepEnds(string(content))

	for i, line := range lines {
		if strings.TrimSpace(line) != ServicesHeader {
			continue
		}
		if !strings.HasSuffix(line, "\n") {
			lines[i] = line + "\n"
		}
		out := make([]string, 0, len(lines)+1)
		out = append(out, lines[:i+1]...)
		out = append(out, serviceLine)
		out = append(out, lines[i+1:]...)
		return []byte(strings.Join(out, ""))
	}

	lines = append(lines, "\n"+ServicesHeader+"\n", serviceLine)
	return []byte(strings.Join(lines, ""))
}

func splitKeepEnds(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
