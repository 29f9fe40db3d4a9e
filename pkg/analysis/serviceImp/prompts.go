package serviceImp

const noveltyPrompt = `You are an AI novelty detector. Analyze the following text and provide:
1. Estimated novelty percentage (0-100%%).
2. List of any unique or original sections if any.
Only respond in JSON format like:
{
    "novelty_percentage": 70,
    "unique_sections": ["text part 1...", "text part 2..."]
}

Text to check:
%s`

const plagiarismPrompt = `You are an AI plagiarism detector. Analyze the following text and provide:
1. Estimated plagiarism percentage (0-100%%).
2. List of any suspicious or copied sections if any.
Only respond in JSON format like:
{
    "plagiarism_percentage": 70,
    "suspicious_sections": ["text part 1...", "text part 2..."]
}

Text to check:
%s`

const costPrompt = `You are an AI cost estimator. Analyze the following text and provide:
1. Estimated cost (in rupees).
2. Breakdown of costs by category if applicable.
3. Search for any mentioned budgets or financial figures.
4. Check for the tools what they are used if it not free of cost and provide the cost.
5. Any other relevant financial information.
Only respond in JSON format like:
{
    "estimated_cost": 1000,
    "cost_breakdown": {
        "category_1": 500,
        "category_2": 300,
        "category_3": 200
    }
}

Text to check:
%s`

const timelinePrompt = `You are an AI timeline generator. Analyze the following text and provide:
1. A timeline of events mentioned in the text.
2. Key dates and their corresponding events.
Only respond in JSON format like:
{
    "timeline": [
        {
            "date": "YYYY-MM-DD",
            "event": "Description of the event"
        }
    ]
}

Text to analyze:
%s`

const extractPrompt = `Extract the following details from the document and return ONLY valid JSON:
{
    "title": "...",
    "author": "...",
    "affiliation": "...",
    "abstract": "...",
    "keywords": ["...", "..."],
    "introduction": "...",
    "methodology": "...",
    "results": "...",
    "discussion": "...",
    "conclusion": "...",
    "references": ["...", "..."],
    "timeline": "...",
    "research_needs": ["...", "..."],
    "funding_sources": ["...", "..."],
    "collaborating_institutions": ["...", "..."]
}
Respond with JSON ONLY. No explanations, no markdown.

Document:
%s`

const validatePrompt = `You are an expert proposal reviewer.

--- PROPOSAL CONTENT (string) ---
%s

--- TEMPLATE (must be checked) ---
%s

--- TASK ---
1. Treat the content as multi-line string input.
2. Check spelling and grammar.
3. Check if all required fields from the template exist in the string.
4. Output ONLY a JSON array.

Example:
[
{"line": 1, "message": "Abstract too short"},
{"line": 2, "message": "Missing keywords field"}
]`

const proposalTemplate = `{
    "title": "Concise, descriptive project title",
    "author": "Full name(s) of principal investigator(s)",
    "affiliation": "Institution/organization leading the project",
    "abstract": "A 200-300 word summary capturing problem, research gap, objectives, methodology, and expected impact.",
    "keywords": ["3-6 keywords capturing research focus"],
    "introduction": "Background, why the research is needed, the research gap, and strategic significance.",
    "methodology": "Clear step-by-step methods, experimental and computational.",
    "results": "Expected technical results framed in measurable terms.",
    "discussion": "Why the results matter, limitations and how the work overcomes them.",
    "conclusion": "3-5 sentences restating importance, feasibility, and long-term potential.",
    "references": ["Formatted citations of relevant reports, journals, or policies."],
    "timeline": "Phases with months.",
    "research_needs": ["Specific gaps the research addresses."],
    "funding_sources": ["Potential sponsors."],
    "collaborating_institutions": ["Partner institutions."]
}`
