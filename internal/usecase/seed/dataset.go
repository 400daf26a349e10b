package seed

import "github.com/kailas-cloud/rankfusion/internal/domain"

// SampleMovies returns the fixed demo dataset, embeddings not yet attached.
func SampleMovies() []domain.Movie {
	return []domain.Movie{
		{
			Title: "Star Wars: A New Hope",
			Plot: "Luke Skywalker joins forces with a Jedi Knight, a cocky pilot, a Wookiee and two droids " +
				"to save the galaxy from the Empire's world-destroying battle station, while also attempting " +
				"to rescue Princess Leia from the evil Darth Vader.",
			Genre: "Sci-Fi",
		},
		{
			Title: "The Godfather",
			Plot:  "The aging patriarch of an organized crime dynasty transfers control of his empire to his reluctant son.",
			Genre: "Crime",
		},
		{
			Title: "The Dark Knight",
			Plot:  "Batman must face the Joker, a criminal mastermind who wants to watch the world burn.",
			Genre: "Action",
		},
		{
			Title: "Pulp Fiction",
			Plot:  "The lives of two mob hitmen, a boxer, and a gangster's wife intertwine in tales of violence and redemption.",
			Genre: "Crime",
		},
		{
			Title: "Forrest Gump",
			Plot:  "A simple man from Alabama experiences several historical events in the 20th century.",
			Genre: "Drama",
		},
	}
}
