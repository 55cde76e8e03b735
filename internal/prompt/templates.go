package prompt

const roadmapPromptTemplate = `You are an expert university admissions consultant for a Korean high school student aiming for a Computer Science/AI major.
Create a detailed 12-month roadmap for the year %YEAR%.

Context:
1. The student's main focus is Artificial Intelligence.
2. March (3월) must focus on an "Invention Competition" (발명 대회).
3. The goal is to build a strong portfolio (Student Record/Saeng-gi-bu).

Generate a plan for each month (1-12).`

const ideasPromptTemplate = `Generate a comprehensive list of exactly %COUNT% innovative invention ideas for a high school invention competition happening in March.
The ideas must utilize Artificial Intelligence (AI) but be feasible for a high school student to prototype.

CRITICAL REQUIREMENTS:
1. Generate exactly %COUNT% items.
2. Output language must be Korean (한국어).
3. Keep 'problem' and 'solution' very concise (max 1 sentence each) to ensure the response fits within the token limit.

Context from user: %CONTEXT%`

const studyPromptTemplate = `Create a structured study list for a student learning AI for university admissions.
Current Level: %LEVEL%
Provide %TOPICS% key study topics ranging from theoretical math to practical coding.`
