package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point, coordinates ordered [lon, lat].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

func (p GeoPoint) Lon() float64 {
	if len(p.Coordinates) == 2 {
		return p.Coordinates[0]
	}
	return 0
}

func (p GeoPoint) Lat() float64 {
	if len(p.Coordinates) == 2 {
		return p.Coordinates[1]
	}
	return 0
}

// Review is immutable once written. The author fields come from the verified
// bearer token, never from the submitted form; the raw token is retained for
// audit display on the detail endpoint.
type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nombre      string             `bson:"nombre" json:"nombre"`
	Direccion   string             `bson:"direccion" json:"direccion"`
	Coordenadas GeoPoint           `bson:"coordenadas" json:"coordenadas"`
	Valoracion  float64            `bson:"valoracion" json:"valoracion"`

	AutorEmail  string `bson:"autorEmail" json:"autorEmail"`
	AutorNombre string `bson:"autorNombre,omitempty" json:"autorNombre,omitempty"`

	Token          string    `bson:"token" json:"token"`
	TokenEmision   time.Time `bson:"tokenEmision" json:"tokenEmision"`
	TokenCaducidad time.Time `bson:"tokenCaducidad" json:"tokenCaducidad"`

	Imagenes []string  `bson:"imagenes" json:"imagenes"`
	CreadoEn time.Time `bson:"creadoEn" json:"creadoEn"`
}
