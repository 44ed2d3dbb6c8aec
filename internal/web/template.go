// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

// homePage is the embedded analyzer form. It posts the clause text to
// /api/analyze and renders the report fields client-side.
const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Clause Scan - Legal Clause Analyzer</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background: #f5f5f5; }
        .container { background: white; padding: 30px; border-radius: 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        h1 { color: #2c3e50; }
        textarea { width: 100%; height: 200px; margin: 10px 0; padding: 10px; box-sizing: border-box; }
        button { background: #007cba; color: white; padding: 10px 20px; border: none; border-radius: 5px; cursor: pointer; }
        button:hover { background: #005a87; }
        .result { margin-top: 20px; padding: 15px; background: #f8f8f8; border-radius: 5px; }
        .finding { margin: 10px 0; padding: 10px; border-left: 3px solid #f57c00; background: white; }
        .risk-critical { color: #d32f2f; font-weight: bold; }
        .risk-high { color: #f57c00; font-weight: bold; }
        .risk-medium { color: #fbc02d; font-weight: bold; }
        .risk-low { color: #388e3c; font-weight: bold; }
        .error { color: #d32f2f; }
        .disclaimer { font-size: 0.8em; color: #777; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Clause Scan</h1>
        <p>Paste a contract clause below for a heuristic risk gut-check with plain-English explanations.</p>

        <textarea id="clauseText" placeholder="Paste your legal clause here for analysis..."></textarea>
        <br>
        <button onclick="analyzeClause()">Analyze Clause</button>

        <div id="result" class="result" style="display: none;"></div>
        <p class="disclaimer">This analysis is for informational purposes only and does not constitute legal advice.</p>
    </div>

    <script>
        async function analyzeClause() {
            const clauseText = document.getElementById('clauseText').value;
            const resultDiv = document.getElementById('result');
            resultDiv.innerHTML = '<p>Analyzing...</p>';
            resultDiv.style.display = 'block';

            try {
                const response = await fetch('/api/analyze', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ clause: clauseText })
                });
                const data = await response.json();
                displayResults(data);
            } catch (error) {
                resultDiv.innerHTML = '<p class="error">Error: ' + error.message + '</p>';
            }
        }

        function escapeHtml(s) {
            const div = document.createElement('div');
            div.textContent = s;
            return div.innerHTML;
        }

        function renderFindings(title, findings) {
            if (!findings || findings.length === 0) return '';
            let html = '<h3>' + title + '</h3>';
            findings.forEach(f => {
                html += '<div class="finding">';
                html += '<strong>[<span class="risk-' + f.riskLevel.toLowerCase() + '">' + f.riskLevel + '</span>] ' + escapeHtml(f.issue) + '</strong><br>';
                html += escapeHtml(f.description) + '<br>';
                html += '<em>' + escapeHtml(f.plainEnglish) + '</em><br>';
                html += 'Recommendation: ' + escapeHtml(f.recommendation);
                html += '</div>';
            });
            return html;
        }

        function displayResults(data) {
            const resultDiv = document.getElementById('result');

            if (data.error) {
                resultDiv.innerHTML = '<p class="error">' + escapeHtml(data.error) + '</p>';
                return;
            }

            const summary = data.summary;
            const detailed = data.detailedAnalysis;

            let html = '<h2>Analysis Results</h2>';
            html += '<p><strong>Contract Type:</strong> ' + escapeHtml(summary.contractType) + '</p>';
            html += '<p><strong>Overall Severity:</strong> <span class="risk-' + summary.overallSeverity.toLowerCase() + '">' + summary.overallSeverity + '</span></p>';
            html += '<p><strong>Total Issues:</strong> ' + summary.totalIssues + '</p>';

            if (summary.keyFindings && summary.keyFindings.length > 0) {
                html += '<ul>';
                summary.keyFindings.forEach(line => { html += '<li>' + escapeHtml(line) + '</li>'; });
                html += '</ul>';
            }

            html += renderFindings('Ambiguous Terms', detailed.ambiguities);
            html += renderFindings('High-Risk Clauses', detailed.risks);

            if (detailed.missingProtections && detailed.missingProtections.length > 0) {
                html += '<h3>Missing Protections</h3><ul>';
                detailed.missingProtections.forEach(m => {
                    html += '<li><strong>' + escapeHtml(m.element) + '</strong>: ' + escapeHtml(m.recommendation) + '</li>';
                });
                html += '</ul>';
            }

            if (data.legalReferences && data.legalReferences.length > 0) {
                html += '<h3>Legal References</h3><ul>';
                data.legalReferences.forEach(ref => { html += '<li>' + escapeHtml(ref) + '</li>'; });
                html += '</ul>';
            }

            resultDiv.innerHTML = html;
        }
    </script>
</body>
</html>
`
