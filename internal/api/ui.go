package api

import "net/http"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// indexHTML is the whole front-end: one input, a progress log, the
// rendered JSON, and a download link. It polls the job endpoint until the
// job reaches a terminal status.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Exam Syllabus Fetcher</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.5rem; }
  form { display: flex; gap: .5rem; margin: 1rem 0; }
  input[type=text] { flex: 1; padding: .5rem; font-size: 1rem; }
  select { padding: .5rem; font-size: 1rem; }
  button { padding: .5rem 1rem; font-size: 1rem; cursor: pointer; }
  #progress { background: #f6f8fa; border: 1px solid #ddd; border-radius: 4px; padding: .75rem; min-height: 1.5rem; white-space: pre-line; }
  #result { background: #0d1117; color: #c9d1d9; padding: 1rem; border-radius: 4px; overflow-x: auto; display: none; }
  #actions { margin: 1rem 0; display: none; }
  #error { color: #b00020; }
</style>
</head>
<body>
<h1>Exam Syllabus Fetcher</h1>
<p>Enter the name of an exam and the service will search the web, crawl the best matches, and assemble a structured syllabus.</p>
<form id="fetch-form">
  <input type="text" id="exam" placeholder="e.g. JEE, GATE, UPSC" autocomplete="off">
  <select id="model">
    <option value="">default model</option>
    <option value="o3-mini">o3-mini</option>
    <option value="gpt-4o-mini">gpt-4o-mini</option>
  </select>
  <button type="submit" id="go">Fetch Syllabus</button>
</form>
<div id="progress">Idle.</div>
<p id="error"></p>
<div id="actions">
  <a id="download" download="syllabus.json">Download syllabus.json</a> &middot;
  <a id="view" target="_blank">View outline</a>
</div>
<pre id="result"><code id="result-json"></code></pre>
<script>
const form = document.getElementById('fetch-form');
const progressBox = document.getElementById('progress');
const errorBox = document.getElementById('error');
const actions = document.getElementById('actions');
const resultPre = document.getElementById('result');
const resultJSON = document.getElementById('result-json');
let timer = null;

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  const exam = document.getElementById('exam').value.trim();
  const model = document.getElementById('model').value;
  errorBox.textContent = '';
  actions.style.display = 'none';
  resultPre.style.display = 'none';
  if (!exam) {
    errorBox.textContent = 'Please enter an exam name.';
    return;
  }
  if (timer) clearInterval(timer);
  progressBox.textContent = 'Submitting...';
  try {
    const resp = await fetch('/api/syllabus', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(model ? {exam, model} : {exam})
    });
    const body = await resp.json();
    if (!resp.ok) throw new Error(body.error || resp.statusText);
    timer = setInterval(() => poll(body.job_id), 1500);
  } catch (err) {
    progressBox.textContent = 'Idle.';
    errorBox.textContent = err.message;
  }
});

async function poll(jobID) {
  const resp = await fetch('/api/syllabus/' + jobID);
  if (!resp.ok) return;
  const job = await resp.json();
  progressBox.textContent = (job.progress || []).join('\n') || 'Queued...';
  if (job.status === 'completed') {
    clearInterval(timer);
    resultJSON.textContent = JSON.stringify(job.syllabus, null, 4);
    resultPre.style.display = 'block';
    document.getElementById('download').href = '/api/syllabus/' + jobID + '/download';
    document.getElementById('view').href = '/api/syllabus/' + jobID + '/view';
    actions.style.display = 'block';
  } else if (job.status === 'no_results' || job.status === 'failed') {
    clearInterval(timer);
    errorBox.textContent = job.error || 'Fetch failed.';
  }
}
</script>
</body>
</html>
`
