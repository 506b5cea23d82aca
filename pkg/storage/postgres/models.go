package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"yokeair/pkg/domain"

	"github.com/google/uuid"
)

// jsonb carries a raw JSON document in and out of jsonb columns. goqu
// interpolates it as a string literal through driver.Valuer.
type jsonb []byte

func (j jsonb) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "[]", nil
	}

	return string(j), nil
}

func (j *jsonb) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = jsonb(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}

	return nil
}

type PgUser struct {
	ID    uuid.UUID `db:"id"    goqu:"skipinsert"`
	Role  string    `db:"role"`
	Email string    `db:"email"`

	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Phone     string `db:"phone"`

	AvatarURL     sql.NullString `db:"avatar_url"`
	AvatarAssetID sql.NullString `db:"avatar_asset_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	u := &domain.User{
		ID:        domain.UserID(p.ID),
		Role:      domain.Role(p.Role),
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
	if p.AvatarAssetID.Valid {
		u.Avatar = &domain.Asset{URL: p.AvatarURL.String, ExternalID: p.AvatarAssetID.String}
	}

	return u
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:        uuid.UUID(user.ID),
		Role:      string(user.Role),
		Email:     strings.ToLower(strings.TrimSpace(user.Email)),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
	if user.Avatar != nil {
		p.AvatarURL = sql.NullString{String: user.Avatar.URL, Valid: true}
		p.AvatarAssetID = sql.NullString{String: user.Avatar.ExternalID, Valid: true}
	}
}

type PgBuilding struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	BrokerID uuid.UUID `db:"broker_id"`

	Street       string `db:"street"`
	Borough      string `db:"borough"`
	Neighborhood string `db:"neighborhood"`
	City         string `db:"city"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBuilding) ToDomain() *domain.Building {
	return &domain.Building{
		ID:           domain.BuildingID(p.ID),
		BrokerID:     domain.UserID(p.BrokerID),
		Street:       p.Street,
		Borough:      p.Borough,
		Neighborhood: p.Neighborhood,
		City:         p.City,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgBuilding) FromDomain(building domain.Building) {
	*p = PgBuilding{
		ID:           uuid.UUID(building.ID),
		BrokerID:     uuid.UUID(building.BrokerID),
		Street:       building.Street,
		Borough:      building.Borough,
		Neighborhood: building.Neighborhood,
		City:         building.City,
	}
}

type PgTag struct {
	ID   uuid.UUID `db:"id"   goqu:"skipinsert"`
	Name string    `db:"name"`
	Type string    `db:"type"`
}

func (p *PgTag) ToDomain() domain.Tag {
	return domain.Tag{ID: domain.TagID(p.ID), Name: p.Name, Type: domain.TagType(p.Type)}
}

// pgOwnedTag is a tag joined with the id of the building or property carrying it.
type pgOwnedTag struct {
	OwnerID uuid.UUID `db:"owner_id"`
	ID      uuid.UUID `db:"id"`
	Name    string    `db:"name"`
	Type    string    `db:"type"`
}

type PgProperty struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	BuildingID uuid.UUID `db:"building_id"`
	BrokerID   uuid.UUID `db:"broker_id"`

	UnitNumber    string        `db:"unit_number"`
	Bedrooms      int           `db:"bedrooms"`
	BedroomType   string        `db:"bedroom_type"`
	Bathrooms     int           `db:"bathrooms"`
	Price         float64       `db:"price"`
	SquareFootage sql.NullInt64 `db:"square_footage"`
	Status        string        `db:"status"`
	Images        jsonb         `db:"images"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProperty) ToDomain() (*domain.Property, error) {
	images := []domain.Asset{}
	if len(p.Images) > 0 {
		if err := json.Unmarshal(p.Images, &images); err != nil {
			return nil, fmt.Errorf("could not unmarshal property images: %w", err)
		}
	}

	prop := &domain.Property{
		ID:          domain.PropertyID(p.ID),
		BuildingID:  domain.BuildingID(p.BuildingID),
		BrokerID:    domain.UserID(p.BrokerID),
		UnitNumber:  p.UnitNumber,
		Bedrooms:    p.Bedrooms,
		BedroomType: p.BedroomType,
		Bathrooms:   p.Bathrooms,
		Price:       p.Price,
		Status:      domain.PropertyStatus(p.Status),
		Images:      images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
	if p.SquareFootage.Valid {
		sqft := int(p.SquareFootage.Int64)
		prop.SquareFootage = &sqft
	}

	return prop, nil
}

func (p *PgProperty) FromDomain(property domain.Property) error {
	images, err := marshalAssets(property.Images)
	if err != nil {
		return err
	}

	*p = PgProperty{
		ID:          uuid.UUID(property.ID),
		BuildingID:  uuid.UUID(property.BuildingID),
		BrokerID:    uuid.UUID(property.BrokerID),
		UnitNumber:  property.UnitNumber,
		Bedrooms:    property.Bedrooms,
		BedroomType: property.BedroomType,
		Bathrooms:   property.Bathrooms,
		Price:       property.Price,
		Status:      string(property.Status),
		Images:      images,
	}
	if property.SquareFootage != nil {
		p.SquareFootage = sql.NullInt64{Int64: int64(*property.SquareFootage), Valid: true}
	}

	return nil
}

func pgPropertiesToDomain(rows []PgProperty) ([]domain.Property, error) {
	out := make([]domain.Property, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// marshalAssets encodes assets as a JSON array, never as null.
func marshalAssets(assets []domain.Asset) (jsonb, error) {
	if assets == nil {
		assets = []domain.Asset{}
	}
	b, err := json.Marshal(assets)
	if err != nil {
		return nil, fmt.Errorf("could not marshal images: %w", err)
	}

	return b, nil
}

type PgApplication struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	ApplicantID uuid.UUID `db:"applicant_id"`
	PropertyID  uuid.UUID `db:"property_id"`

	Status          string  `db:"status"`
	ApplicationType string  `db:"application_type"`
	MonthlyIncome   float64 `db:"monthly_income"`
	Employer        string  `db:"employer"`
	Position        string  `db:"position"`
	YearsEmployed   int     `db:"years_employed"`
	Notes           string  `db:"notes"`
	Documents       jsonb   `db:"documents"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() (*domain.Application, error) {
	docs := []domain.Document{}
	if len(p.Documents) > 0 {
		if err := json.Unmarshal(p.Documents, &docs); err != nil {
			return nil, fmt.Errorf("could not unmarshal application documents: %w", err)
		}
	}

	return &domain.Application{
		ID:            domain.ApplicationID(p.ID),
		ApplicantID:   domain.UserID(p.ApplicantID),
		PropertyID:    domain.PropertyID(p.PropertyID),
		Status:        domain.ApplicationStatus(p.Status),
		Type:          domain.ApplicationType(p.ApplicationType),
		MonthlyIncome: p.MonthlyIncome,
		Employment: domain.Employment{
			Employer:      p.Employer,
			Position:      p.Position,
			YearsEmployed: p.YearsEmployed,
		},
		Notes:     p.Notes,
		Documents: docs,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}, nil
}

func (p *PgApplication) FromDomain(app domain.Application) error {
	docs := app.Documents
	if docs == nil {
		docs = []domain.Document{}
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("could not marshal application documents: %w", err)
	}

	*p = PgApplication{
		ID:              uuid.UUID(app.ID),
		ApplicantID:     uuid.UUID(app.ApplicantID),
		PropertyID:      uuid.UUID(app.PropertyID),
		Status:          string(app.Status),
		ApplicationType: string(app.Type),
		MonthlyIncome:   app.MonthlyIncome,
		Employer:        app.Employment.Employer,
		Position:        app.Employment.Position,
		YearsEmployed:   app.Employment.YearsEmployed,
		Notes:           app.Notes,
		Documents:       b,
	}

	return nil
}

func pgApplicationsToDomain(rows []PgApplication) ([]domain.Application, error) {
	out := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func uuids[T ~[16]byte](ids []T) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		u := uuid.UUID(id)
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}

	return out
}
