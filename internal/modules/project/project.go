// Package project serves the static portfolio project records. The records
// ship with the binary; there is no write path.
package project

// Project is one portfolio entry.
type Project struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	TechStack        []string `json:"techStack"`
	Img              string   `json:"img"`
	GitLink          string   `json:"gitLink,omitempty"`
	LiveLink         string   `json:"liveLink,omitempty"`
}

var projects = []Project{
	{
		Slug:             "serverless-ai-image-editing",
		Title:            "Serverless AI Image Editing Platform (AWS Bedrock)",
		ShortDescription: "GenAI-powered image generation and editing using AWS Bedrock",
		FullDescription: "A fully serverless web application that enables users to generate and edit images " +
			"using Generative AI prompts. Built with Amazon Bedrock (Titan Image Generator) and AWS-native " +
			"services to deliver a scalable, secure, production-ready GenAI solution without managing servers " +
			"or ML infrastructure.",
		TechStack: []string{
			"Amazon Bedrock", "AWS Lambda", "API Gateway", "DynamoDB",
			"AWS Amplify", "Amazon Cognito", "Serverless",
		},
		Img:     "/project_1.png",
		GitLink: "https://github.com/Shourya-8416/Image-Editing-Tool",
	},
	{
		Slug:             "ai-credit-risk-engine",
		Title:            "AI Credit Risk & Eligibility Decision Engine",
		ShortDescription: "AI-powered credit risk assessment and loan eligibility system",
		FullDescription: "An AI-powered backend system designed for fintech and financial platforms to assess " +
			"credit risk and loan eligibility. Built using Java and Spring Boot, the system combines rule-based " +
			"financial scoring with LLM-driven reasoning to classify applicants into High, Medium, and Low Risk " +
			"categories while generating explainable approval or rejection decisions.",
		TechStack: []string{
			"Java", "Spring Boot", "REST APIs", "MySQL", "LangChain4j",
			"LLM Integration", "FAISS", "FinTech Risk Scoring",
		},
		Img:     "/project-2.png",
		GitLink: "https://github.com/Shourya-8416/ai-credit-risk-engine",
	},
	{
		Slug:             "chatbot-rag",
		Title:            "Context-Aware Chatbot with Vector Search (RAG)",
		ShortDescription: "Spring Boot chatbot with RAG for context-aware responses",
		FullDescription: "A Spring Boot based chatbot that integrates an open-source LLM with vector search to " +
			"deliver accurate, context-aware responses. Implements Retrieval-Augmented Generation (RAG) using " +
			"embeddings and similarity search to reduce hallucinations and improve answer relevance.",
		TechStack: []string{
			"Java", "Spring Boot", "Open-source LLM", "Vector Search (FAISS)", "SQL", "REST APIs",
		},
		Img:     "/project-3.png",
		GitLink: "https://github.com/Shourya-8416/chatbot-rag",
	},
	{
		Slug:             "task-workflow-system",
		Title:            "Cloud-Native Task & Workflow Management System",
		ShortDescription: "Full-stack task management with role-based access on AWS",
		FullDescription: "A full-stack web application built with Spring Boot and React for managing tasks and " +
			"workflows with role-based access. Features secure REST APIs, SQL-backed persistence, and cloud " +
			"deployment on AWS following scalable backend design principles.",
		TechStack: []string{
			"Java", "Spring Boot", "React", "SQL", "AWS EC2", "AWS RDS", "JWT",
		},
		Img:     "/project-4.png",
		GitLink: "https://github.com/Shourya-8416/task-workflow-system",
	},
}

// All returns every project in display order.
func All() []Project {
	return projects
}

// FindBySlug returns the project with the given slug, or nil.
func FindBySlug(slug string) *Project {
	for i := range projects {
		if projects[i].Slug == slug {
			return &projects[i]
		}
	}
	return nil
}
