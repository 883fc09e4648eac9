package readability_test

import (
	"testing"

	"github.com/fwojciec/siteqa/readability"
	"github.com/stretchr/testify/assert"
)

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("extracts article text", func(t *testing.T) {
		t.Parallel()

		c := readability.NewCleaner()
		got := c.Clean(`<html><body>
			<article>
				<h1>Machine Learning Consulting</h1>
				<p>We build production machine learning systems for enterprises.
				Our team has delivered dozens of NLP and computer vision projects,
				from proof of concept through deployment and monitoring.</p>
				<p>Contact us to discuss your use case and get a project estimate.</p>
			</article>
		</body></html>`)

		assert.Contains(t, got, "production machine learning systems")
		assert.Contains(t, got, "project estimate")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		c := readability.NewCleaner()

		assert.Empty(t, c.Clean(""))
		assert.Empty(t, c.Clean("  \n\t "))
	})

	t.Run("normalizes whitespace", func(t *testing.T) {
		t.Parallel()

		c := readability.NewCleaner()
		got := c.Clean(`<html><body><article>
			<p>first   line with    gaps</p>


			<p>  second line  </p>
		</article></body></html>`)

		assert.NotContains(t, got, "  ")
	})
}
