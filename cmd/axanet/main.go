package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/BruksfildServices01/axanet-clients/internal/audit"
	"github.com/BruksfildServices01/axanet-clients/internal/config"
	"github.com/BruksfildServices01/axanet-clients/internal/console"
	dbpkg "github.com/BruksfildServices01/axanet-clients/internal/db"
	"github.com/BruksfildServices01/axanet-clients/internal/infra/repository"
	"github.com/BruksfildServices01/axanet-clients/internal/timezone"
	ucClient "github.com/BruksfildServices01/axanet-clients/internal/usecase/client"
	"github.com/BruksfildServices01/axanet-clients/internal/validators"
)

const auditFile = "auditoria.log"

func main() {
	cfg := config.Load()

	dir := cfg.DataDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	repo, err := repository.NewClientFileRepository(dir)
	if err != nil {
		log.Fatalf("failed to open client store: %v", err)
	}

	// o menu ocupa o terminal; sem banco a auditoria vai para um arquivo
	// ao lado das fichas (não é .txt, então fica fora do índice)
	var sink audit.Sink
	if cfg.AuditEnabled() {
		sink = audit.New(dbpkg.NewDB(cfg))
	} else {
		f, err := os.OpenFile(filepath.Join(dir, auditFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open audit log: %v", err)
		}
		defer f.Close()
		sink = audit.NewLogSink(log.New(f, "", log.LstdFlags))
	}
	dispatcher := audit.NewDispatcher(sink)
	defer dispatcher.Close()

	clock := timezone.Clock(cfg.Timezone)

	menu := console.NewMenu(os.Stdin, os.Stdout, console.UseCases{
		Create:     ucClient.NewCreateClient(repo, dispatcher, clock),
		View:       ucClient.NewViewClient(repo),
		List:       ucClient.NewListClients(repo),
		AddService: ucClient.NewAddService(repo, dispatcher, clock),
		Delete:     ucClient.NewDeleteClient(repo, dispatcher),
	})
	if cfg.CheckEmailDomain {
		menu.CheckEmail = validators.IsEmailDomainValid
	}

	// a leitura do terminal não é interrompível: no Ctrl-C a auditoria
	// é drenada e o processo sai
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		fmt.Fprintln(os.Stdout, "\nOperación interrumpida.")
		dispatcher.Close()
		os.Exit(130)
	}()

	if err := menu.Run(context.Background()); err != nil {
		log.Printf("menu stopped: %v", err)
	}
}
