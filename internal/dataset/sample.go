package dataset

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pitehu/simbench/internal/metrics"
	"github.com/pitehu/simbench/internal/models"
)

// DefaultSampleSize is the number of synthetic questions generated when a
// real results file cannot be loaded.
const DefaultSampleSize = 100

var (
	sampleDatasets = []string{
		"OpinionQA", "GlobalOpinionQA", "AfroBarometer", "LatinoBarometro",
		"ESS", "ISSP", "MoralMachine", "Choices13k", "ChaosNLI", "Jester",
		"WisdomOfCrowds", "OSPsychMGKT", "OSPsychBig5", "TISP",
	}

	sampleModels = []string{
		"GPT-4.1", "GPT-3.5-turbo", "Claude-3-Opus", "Claude-3-Sonnet",
		"Llama-3-70b", "Llama-3-8b", "Mistral-7b", "Gemini-Pro",
	}

	// sampleCorrelations sets how closely each model's answers track the
	// human distribution. Stronger models correlate more, so the generated
	// leaderboard shows a realistic spread of scores.
	sampleCorrelations = map[string]float64{
		"GPT-4.1":         0.9,
		"GPT-3.5-turbo":   0.65,
		"Claude-3-Opus":   0.85,
		"Claude-3-Sonnet": 0.8,
		"Llama-3-70b":     0.75,
		"Llama-3-8b":      0.6,
		"Mistral-7b":      0.55,
		"Gemini-Pro":      0.7,
	}

	sampleSubsets = []string{"SimBenchPop", "SimBenchGrouped"}

	sampleCountries = []string{
		"United States", "United Kingdom", "Germany", "France", "Spain",
		"Brazil", "Mexico", "Kenya", "South Africa", "Nigeria",
		"India", "China", "Japan", "Australia", "Canada",
	}

	sampleAgeGroups = []string{"18-29", "30-49", "50-64", "65+"}

	sampleTemplates = []string{
		"Do you agree with the following statement: %s?",
		"In this scenario, what would you choose: %s?",
		"How would you rate your agreement with: %s?",
		"Which option best describes your view on %s?",
		"What is your opinion on the following: %s?",
	}

	sampleTopics = []string{
		"government should regulate social media",
		"climate change is a serious threat",
		"economic growth should be prioritized over environmental protection",
		"immigration benefits the country",
		"artificial intelligence will create more jobs than it destroys",
		"universal healthcare should be provided by the government",
		"education should be free at all levels",
		"death penalty is justified for serious crimes",
		"same-sex marriage should be legal",
		"voting should be mandatory",
	}
)

// Sample generates n structurally valid synthetic result records. The same
// seed always yields the same records, so the fallback dataset is stable
// across reloads. Sample never fails; n < 1 yields the default size.
func Sample(n int, seed int64) []models.RawRecord {
	if n < 1 {
		n = DefaultSampleSize
	}
	rng := rand.New(rand.NewSource(seed))

	records := make([]models.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		numOptions := 2 + rng.Intn(4)
		options := make([]string, numOptions)
		for j := range options {
			options[j] = models.OptionLabel(j)
		}

		modelName := sampleModels[rng.Intn(len(sampleModels))]
		human := sampleDistribution(rng, options)
		model := correlatedDistribution(rng, human, options, sampleCorrelations[modelName])

		entropy := metrics.NormalizedEntropy(human)
		agreement := models.AgreementFromEntropy(entropy)

		// Score on the benchmark's scale: 100 is a perfect match, lower
		// (possibly far negative) means larger divergence.
		score := 100 - metrics.KLDivergence(human, model)*50

		question := fmt.Sprintf(sampleTemplates[rng.Intn(len(sampleTemplates))],
			sampleTopics[rng.Intn(len(sampleTopics))])
		var sb strings.Builder
		sb.WriteString(question)
		sb.WriteString("\n\nOptions:\n")
		for _, opt := range options {
			fmt.Fprintf(&sb, "(%s): Sample option %s\n", opt, opt)
		}

		subset := sampleSubsets[rng.Intn(len(sampleSubsets))]
		systemPrompt := "You are an Amazon Mechanical Turk worker from the United States."
		if subset == "SimBenchGrouped" {
			systemPrompt = fmt.Sprintf(
				"You are a group of individuals with these shared characteristics:\nYou are from %s, aged %s.",
				sampleCountries[rng.Intn(len(sampleCountries))],
				sampleAgeGroups[rng.Intn(len(sampleAgeGroups))])
		}

		entropyCopy := entropy
		scoreCopy := score
		records = append(records, models.RawRecord{
			DatasetName:   sampleDatasets[rng.Intn(len(sampleDatasets))],
			QuestionText:  sb.String(),
			SystemPrompt:  systemPrompt,
			Subset:        subset,
			Entropy:       &entropyCopy,
			Agreement:     agreement,
			HumanAnswer:   human,
			ModelAnswer:   model,
			Model:         modelName,
			Score:         &scoreCopy,
			GroupSize:     50 + rng.Intn(1951),
			AnswerOptions: options,
		})
	}
	return records
}

// sampleDistribution draws a normalized random distribution over the options.
func sampleDistribution(rng *rand.Rand, options []string) models.Distribution {
	d := make(models.Distribution, len(options))
	total := 0.0
	for _, opt := range options {
		p := rng.Float64()
		d[opt] = p
		total += p
	}
	for opt := range d {
		d[opt] /= total
	}
	return d
}

// correlatedDistribution perturbs a human distribution into a model one:
// a convex mix with the uniform distribution plus Gaussian noise, clamped
// and renormalized. Options are visited in order so a fixed seed always
// draws the same noise.
func correlatedDistribution(rng *rand.Rand, human models.Distribution, options []string, correlation float64) models.Distribution {
	d := make(models.Distribution, len(human))
	uniform := 1.0 / float64(len(human))
	total := 0.0
	for _, opt := range options {
		v := human[opt]*correlation + (1-correlation)*uniform + rng.NormFloat64()*0.1
		if v < 0.01 {
			v = 0.01
		}
		if v > 0.99 {
			v = 0.99
		}
		d[opt] = v
		total += v
	}
	for opt := range d {
		d[opt] /= total
	}
	return d
}
