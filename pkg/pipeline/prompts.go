package pipeline

import "fmt"

// requirementsPrompt builds the stage-one prompt: a structured requirements
// report over five fixed categories for the given job title and description.
func requirementsPrompt(jobTitle, jobDescription string) string {
	return fmt.Sprintf(`Research the key qualifications, skills, and requirements for the position of %q
with this job description:
%s

In your analysis, include:
1. Essential technical skills and qualifications
2. Required education and experience levels
3. Important soft skills
4. Industry-specific knowledge or certifications
5. Current trends or emerging skills in demand for this role

Format your response as a structured report with clear sections. Be comprehensive but focus on
the most important qualifications that employers typically look for.`, jobTitle, jobDescription)
}

// evaluationPrompt builds the stage-two prompt: the requirements report from
// stage one is embedded verbatim next to the resume text, and the model is
// asked for six fixed sections including a 0-10 score.
func evaluationPrompt(requirements, resumeText string) string {
	return fmt.Sprintf(`You are an AI Resume Evaluator with expertise in ATS compliance, clarity, and impactful writing.

First, review these job requirements:
%s

Now, evaluate the following resume against these requirements:
%s

Provide your evaluation with:
1. **Overall Score (out of 10)**
2. **Match Assessment** (How well does the resume match the job requirements?)
3. **Strengths** (What is well-written and aligns with the requirements?)
4. **Weaknesses** (What needs improvement or is missing compared to the requirements?)
5. **ATS Optimization Tips** (How can it rank better in ATS systems?)
6. **Improvement Recommendations** (Specific suggestions to better align with the job requirements)

Be specific, honest, and constructive in your feedback, focusing on actionable improvements.`, requirements, resumeText)
}
