// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"github.com/tomtom215/dailymoma/internal/models"
)

const (
	deptPainting    = "Painting and Sculpture"
	deptPrints      = "Drawings & Prints"
	deptPhotography = "Photography"
)

// Number of curated records that double as the request-level sample list.
const sampleSize = 5

func artwork(title, artist, date, medium, department, classification, objectID string) models.Artwork {
	return models.Artwork{
		Title:          title,
		Artist:         models.SingleArtist(artist),
		Date:           date,
		Medium:         medium,
		Department:     department,
		Classification: classification,
		ObjectID:       models.ObjectID(objectID),
	}
}

// curated is the hand-picked baseline. Order matters: selection indices are
// positions in this list. Several entries share ObjectID 80584.
var curated = []models.Artwork{
	artwork("The Starry Night", "Vincent van Gogh", "1889", "Oil on canvas", deptPainting, "Painting", "79802"),
	artwork("Campbell's Soup Cans", "Andy Warhol", "1962", "Synthetic polymer paint on thirty-two canvases", deptPainting, "Painting", "79809"),
	artwork("Les Demoiselles d'Avignon", "Pablo Picasso", "1907", "Oil on canvas", deptPainting, "Painting", "79766"),
	artwork("The Persistence of Memory", "Salvador Dalí", "1931", "Oil on canvas", deptPainting, "Painting", "79018"),
	artwork("Composition with Red, Blue and Yellow", "Piet Mondrian", "1930", "Oil on canvas", deptPainting, "Painting", "78386"),
	artwork("Water Lilies", "Claude Monet", "1914-26", "Oil on canvas", deptPainting, "Painting", "80208"),
	artwork("The Scream", "Edvard Munch", "1895", "Tempera and pastels on cardboard", deptPainting, "Painting", "80584"),
	artwork("Guernica", "Pablo Picasso", "1937", "Oil on canvas", deptPainting, "Painting", "80584"),
	artwork("American Gothic", "Grant Wood", "1930", "Oil on beaverboard", deptPainting, "Painting", "80584"),
	artwork("The Great Wave off Kanagawa", "Katsushika Hokusai", "c. 1830-32", "Polychrome woodblock print", deptPrints, "Print", "80584"),

	artwork("Number 1, 1950 (Lavender Mist)", "Jackson Pollock", "1950", "Oil, enamel, and aluminum on canvas", deptPainting, "Painting", "80584"),
	artwork("Woman I", "Willem de Kooning", "1950-52", "Oil on canvas", deptPainting, "Painting", "80584"),
	artwork("Flag", "Jasper Johns", "1954-55", "Encaustic, oil, and collage on fabric mounted on plywood", deptPainting, "Painting", "80584"),
	artwork("Marilyn Monroe", "Andy Warhol", "1962", "Silkscreen ink on synthetic polymer paint on canvas", deptPainting, "Painting", "80584"),
	artwork("Untitled (I shop therefore I am)", "Barbara Kruger", "1987", "Photograph", deptPhotography, "Photograph", "80584"),

	artwork("The Bride Stripped Bare by Her Bachelors, Even (The Large Glass)", "Marcel Duchamp", "1915-23", "Oil, varnish, lead foil, lead wire, and dust on two glass panels", deptPainting, "Painting", "80584"),
	artwork("One and Three Chairs", "Joseph Kosuth", "1965", "Wooden folding chair, mounted photograph of a chair, and mounted photographic enlargement of a dictionary definition of a chair", deptPainting, "Sculpture", "80584"),
	artwork("Untitled (Perfect Lovers)", "Felix Gonzalez-Torres", "1987-90", "Two identical wall clocks", deptPainting, "Sculpture", "80584"),

	artwork("The Steerage", "Alfred Stieglitz", "1907", "Photogravure", deptPhotography, "Photograph", "80584"),
	artwork("Migrant Mother, Nipomo, California", "Dorothea Lange", "1936", "Gelatin silver print", deptPhotography, "Photograph", "80584"),
	artwork("The Pond-Moonlight", "Edward Steichen", "1904", "Gum bichromate over platinum print", deptPhotography, "Photograph", "80584"),
}

// Curated returns a copy of the 21-record curated baseline.
func Curated() []models.Artwork {
	out := make([]models.Artwork, len(curated))
	copy(out, curated)
	return out
}

// Sample returns a copy of the 5-record list used for degraded responses.
func Sample() []models.Artwork {
	out := make([]models.Artwork, sampleSize)
	copy(out, curated[:sampleSize])
	return out
}

// CuratedCount is the size of the curated baseline.
func CuratedCount() int {
	return len(curated)
}
