package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"eatsmart-api/internal/chat"
	"eatsmart-api/internal/config"
	"eatsmart-api/internal/domain"
	"eatsmart-api/internal/service"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	store := chat.NewStore(service.DefaultGreeting)
	sim := chat.NewSimulator(store, logger, chat.SimulatorConfig{
		TextDelay: time.Duration(cfg.ReplyDelayMs) * time.Millisecond,
		FileDelay: time.Duration(cfg.FileReplyDelayMs) * time.Millisecond,
	})
	chatSvc := service.NewChatService(store, sim)

	fmt.Println("===== EatSmart Chat =====")
	fmt.Println("Comandos: /new, /sessions, /select <id>, /file <nombre>, /quit")
	printTimeline(store.Active())

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "/quit":
			return
		case line == "/new":
			sess, _ := chatSvc.NewSession()
			fmt.Printf("Sesion %d creada.\n", sess.ID)
			printTimeline(sess)
			continue
		case line == "/sessions":
			for _, s := range chatSvc.Summaries() {
				marker := " "
				if s.Active {
					marker = "*"
				}
				fmt.Printf("%s [%d] %s (%d mensajes)\n", marker, s.ID, s.Title, s.Messages)
			}
			continue
		case strings.HasPrefix(line, "/select "):
			id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/select ")))
			if err != nil {
				fmt.Println("Seleccion invalida.")
				continue
			}
			chatSvc.Select(id)
			printTimeline(store.Active())
			continue
		case strings.HasPrefix(line, "/file "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "/file "))
			if _, err := chatSvc.AttachFile(0, name, 204800); err != nil {
				fmt.Println("No se pudo adjuntar:", err)
				continue
			}
			sim.Wait()
			printTimeline(store.Active())
			continue
		}

		if _, err := chatSvc.SendText(0, line); err != nil {
			if errors.Is(err, service.ErrEmptyMessage) {
				continue
			}
			fmt.Println("Error:", err)
			continue
		}
		sim.Wait()
		printTimeline(store.Active())
	}
}

func printTimeline(sess domain.Session) {
	fmt.Printf("--- %s ---\n", sess.Title)
	for _, m := range sess.Messages {
		switch m.Role {
		case domain.RoleUser:
			fmt.Printf("[%s] tu: %s\n", m.Time, m.Text)
		case domain.RoleBot:
			fmt.Printf("[%s] bot: %s\n", m.Time, m.Text)
		case domain.RoleFile:
			fmt.Printf("[%s] archivo: %s (%d KB)\n", m.Time, m.FileName, m.FileSizeKB)
		case domain.RoleScore:
			fmt.Printf("[%s] score: %d/100\n", m.Time, m.Score)
		}
	}
}
