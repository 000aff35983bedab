package gateway

// maskCPF hides the middle digits of an 11-digit tax id for logs,
// keeping the first 3 and last 2 visible.
func maskCPF(cpf string) string {
	if len(cpf) == 11 {
		return cpf[:3] + ".***.***-" + cpf[9:]
	}
	return "***.***.***-**"
}
