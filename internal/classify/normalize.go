package classify

import "strings"

// techDisplayNames maps lowercase keyword terms to their conventional
// spelling for display in classification output and generated summaries.
var techDisplayNames = map[string]string{
	"go":                     "Go",
	"golang":                 "Go",
	"java":                   "Java",
	"python":                 "Python",
	"javascript":             "JavaScript",
	"typescript":             "TypeScript",
	"react":                  "React",
	"vue":                    "Vue",
	"angular":                "Angular",
	"node.js":                "Node.js",
	"next.js":                "Next.js",
	"html":                   "HTML",
	"css":                    "CSS",
	"sql":                    "SQL",
	"postgresql":             "PostgreSQL",
	"mysql":                  "MySQL",
	"redis":                  "Redis",
	"kafka":                  "Kafka",
	"grpc":                   "gRPC",
	"rest api":               "REST API",
	"api design":             "API design",
	"kubernetes":             "Kubernetes",
	"terraform":              "Terraform",
	"docker":                 "Docker",
	"aws":                    "AWS",
	"gcp":                    "GCP",
	"ci/cd":                  "CI/CD",
	"sre":                    "SRE",
	"devops":                 "DevOps",
	"prometheus":             "Prometheus",
	"etl":                    "ETL",
	"dbt":                    "dbt",
	"spark":                  "Spark",
	"airflow":                "Airflow",
	"snowflake":              "Snowflake",
	"bigquery":               "BigQuery",
	"llm":                    "LLMs",
	"rag":                    "RAG",
	"mlops":                  "MLOps",
	"pytorch":                "PyTorch",
	"tensorflow":             "TensorFlow",
	"openai":                 "OpenAI",
	"anthropic":              "Anthropic",
	"machine learning":       "machine learning",
	"large language model":   "large language models",
	"vector database":        "vector databases",
	"distributed systems":    "distributed systems",
	"microservices":          "microservices",
	"infrastructure as code": "infrastructure as code",
}

// DisplayTechName returns the conventional spelling for a keyword term.
// Terms without a known spelling are returned trimmed but otherwise as-is,
// so multi-word phrases keep their natural casing.
func DisplayTechName(term string) string {
	trimmed := strings.TrimSpace(term)
	if display, ok := techDisplayNames[strings.ToLower(trimmed)]; ok {
		return display
	}
	return trimmed
}
