package client

import "github.com/BruksfildServices01/axanet-clients/internal/audit"

// ConsoleOperator identifica as operações feitas pelo menu interativo.
const ConsoleOperator = "console"

// Actor é quem executou a operação; vai para a trilha de auditoria.
type Actor struct {
	Operator  string
	RequestID string
}

func (a Actor) stamp(ev audit.Event) audit.Event {
	ev.Actor = a.Operator
	ev.RequestID = a.RequestID
	return ev
}
