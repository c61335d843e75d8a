// Command createadmin creates an ADMIN account.
//
//	createadmin -email admin@example.com -name "Store Admin" -password '...'
//
// Flags that are not given are asked for on stdin.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	authadapters "loomspace_backend/internal/feature/auth/adapters"
	authusecase "loomspace_backend/internal/feature/auth/usecase"
	"loomspace_backend/internal/platform/db"
	jwtmw "loomspace_backend/internal/platform/jwt"
)

type adminInput struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required"`
	Password string `validate:"required,min=8"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	var in adminInput
	flag.StringVar(&in.Email, "email", "", "admin email")
	flag.StringVar(&in.Name, "name", "", "admin display name")
	flag.StringVar(&in.Password, "password", "", "admin password (at least 8 characters)")
	flag.Parse()

	if err := prompt(os.Stdin, os.Stdout, &in); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := validator.New().Struct(in); err != nil {
		fmt.Fprintln(os.Stderr, "invalid input:", err)
		os.Exit(2)
	}
	if err := run(in); err != nil {
		if errors.Is(err, authusecase.ErrEmailAlreadyExists) {
			fmt.Fprintf(os.Stderr, "a user with email %s already exists\n", in.Email)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// prompt asks for every field still empty after flag parsing.
func prompt(r io.Reader, w io.Writer, in *adminInput) error {
	sc := bufio.NewScanner(r)
	ask := func(label string, dst *string) error {
		if *dst != "" {
			return nil
		}
		fmt.Fprintf(w, "%s: ", label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return io.ErrUnexpectedEOF
		}
		*dst = strings.TrimSpace(sc.Text())
		return nil
	}
	if err := ask("Email", &in.Email); err != nil {
		return err
	}
	if err := ask("Name", &in.Name); err != nil {
		return err
	}
	return ask("Password", &in.Password)
}

func run(in adminInput) error {
	gdb, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	// トークンは発行しないため署名鍵は不要
	uc := authusecase.NewAuthUsecase(authadapters.NewUserGorm(gdb), jwtmw.NewGenerator("", 0))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := uc.CreateAdmin(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		return err
	}
	slog.Info("admin created", "id", user.ID, "email", user.Email)
	return nil
}
