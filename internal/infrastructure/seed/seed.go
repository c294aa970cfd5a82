// Package seed loads initial users and catalog data from a YAML file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"taller_mecanico/internal/usecase"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type File struct {
	Users    []User    `yaml:"users"`
	Clients  []Client  `yaml:"clients"`
	Vehicles []Vehicle `yaml:"vehicles"`
	Parts    []Part    `yaml:"parts"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type Client struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

// Vehicle references its owner by client name.
type Vehicle struct {
	Plate  string `yaml:"plate"`
	Model  string `yaml:"model"`
	Client string `yaml:"client"`
}

type Part struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// Summary counts the records created by a load; existing ones are skipped.
type Summary struct {
	Users    int
	Clients  int
	Vehicles int
	Parts    int
}

type Loader struct {
	auth    usecase.IAuthUseCase
	catalog usecase.ICatalogUseCase
}

func NewLoader(auth usecase.IAuthUseCase, catalog usecase.ICatalogUseCase) *Loader {
	return &Loader{auth: auth, catalog: catalog}
}

func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// LoadFile applies the seed at path. An empty path is a no-op.
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	if path == "" {
		return Summary{}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return Summary{}, err
	}
	s, err := l.Apply(ctx, f)
	if err != nil {
		return s, err
	}
	log.Printf("[seed] loaded path=%s users=%d clients=%d vehicles=%d parts=%d", path, s.Users, s.Clients, s.Vehicles, s.Parts)
	return s, nil
}

// Apply is idempotent: users match by username, clients and parts by name,
// vehicles by plate.
func (l *Loader) Apply(ctx context.Context, f File) (Summary, error) {
	var s Summary

	for _, u := range f.Users {
		_, err := l.auth.Register(ctx, u.Username, u.Password, u.Role)
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			continue
		}
		if err != nil {
			return s, fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		s.Users++
	}

	clients, err := l.catalog.ListClients(ctx)
	if err != nil {
		return s, err
	}
	clientIDs := make(map[string]string, len(clients))
	for _, c := range clients {
		clientIDs[strings.ToLower(c.Name)] = c.ID
	}
	for _, c := range f.Clients {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if _, ok := clientIDs[key]; ok {
			continue
		}
		created, err := l.catalog.CreateClient(ctx, usecase.ClientInput{Name: c.Name, Phone: c.Phone, Email: c.Email})
		if err != nil {
			return s, fmt.Errorf("seed client %q: %w", c.Name, err)
		}
		clientIDs[key] = created.ID
		s.Clients++
	}

	vehicles, err := l.catalog.ListVehicles(ctx)
	if err != nil {
		return s, err
	}
	plates := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		plates[strings.ToUpper(v.Plate)] = true
	}
	for _, v := range f.Vehicles {
		plate := strings.ToUpper(strings.TrimSpace(v.Plate))
		if plates[plate] {
			continue
		}
		clientID := ""
		if v.Client != "" {
			id, ok := clientIDs[strings.ToLower(strings.TrimSpace(v.Client))]
			if !ok {
				return s, fmt.Errorf("seed vehicle %q: unknown client %q", v.Plate, v.Client)
			}
			clientID = id
		}
		if _, err := l.catalog.CreateVehicle(ctx, usecase.VehicleInput{Plate: v.Plate, Model: v.Model, ClientID: clientID}); err != nil {
			return s, fmt.Errorf("seed vehicle %q: %w", v.Plate, err)
		}
		plates[plate] = true
		s.Vehicles++
	}

	parts, err := l.catalog.ListParts(ctx)
	if err != nil {
		return s, err
	}
	partNames := make(map[string]bool, len(parts))
	for _, p := range parts {
		partNames[strings.ToLower(p.Name)] = true
	}
	for _, p := range f.Parts {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if partNames[key] {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
		if err != nil {
			return s, fmt.Errorf("seed part %q: invalid price %q", p.Name, p.Price)
		}
		if _, err := l.catalog.CreatePart(ctx, usecase.PartInput{Name: p.Name, Price: price}); err != nil {
			return s, fmt.Errorf("seed part %q: %w", p.Name, err)
		}
		partNames[key] = true
		s.Parts++
	}

	return s, nil
}
