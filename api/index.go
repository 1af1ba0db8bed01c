package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// indexHTML is the form page. It posts the profile URL to the JSON API and
// renders the returned persona; progress events arrive over the websocket.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Persona Engine</title>
  <style>
    body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
    input[type=text] { width: 70%; padding: 0.5rem; }
    button { padding: 0.5rem 1rem; }
    .category { margin-top: 1.5rem; }
    .category h3 { text-transform: capitalize; margin-bottom: 0.25rem; }
    .characteristic { margin: 0.25rem 0 0.25rem 1rem; }
    .evidence { color: #555; font-size: 0.9em; }
    #status { color: #888; margin-top: 0.5rem; }
  </style>
</head>
<body>
  <h1>Persona Engine</h1>
  <p>Paste a Reddit profile URL (e.g. https://www.reddit.com/user/kojied) to analyze its public activity.</p>
  <form id="form">
    <input type="text" id="profileUrl" placeholder="https://www.reddit.com/user/username" required>
    <button type="submit">Generate Persona</button>
  </form>
  <div id="status"></div>
  <div id="result"></div>
  <script>
    const status = document.getElementById('status');
    const result = document.getElementById('result');

    const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
    ws.onmessage = (msg) => {
      const event = JSON.parse(msg.data);
      if (event.type === 'ANALYSIS_STARTED') status.textContent = 'Fetching activity...';
      if (event.type === 'RECORD_FETCHED') status.textContent = 'Extracting characteristics...';
      if (event.type === 'PERSONA_GENERATED') status.textContent = '';
    };

    document.getElementById('form').addEventListener('submit', async (e) => {
      e.preventDefault();
      result.innerHTML = '';
      status.textContent = 'Analyzing...';
      const resp = await fetch('/api/personas', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({profileUrl: document.getElementById('profileUrl').value})
      });
      const body = await resp.json();
      status.textContent = '';
      if (!resp.ok) {
        result.innerHTML = '<p style="color:red">' + body.error + '</p>';
        return;
      }
      renderPersona(body.persona);
    });

    function renderPersona(p) {
      let html = '<h2>u/' + p.username + '</h2>';
      if (p.narrative) html += '<p><em>' + p.narrative + '</em></p>';
      for (const cat of ['demographics', 'interests', 'personality', 'behavior', 'communication']) {
        const cs = p[cat] || [];
        if (!cs.length) continue;
        html += '<div class="category"><h3>' + cat + '</h3>';
        for (const c of cs) {
          html += '<div class="characteristic"><strong>' + c.characteristic + ':</strong> ' + c.value;
          if (c.evidence) html += '<div class="evidence">' + c.evidence + '</div>';
          html += '</div>';
        }
        html += '</div>';
      }
      html += '<p class="evidence">' + p.metadata.totalPosts + ' posts, ' +
        p.metadata.totalComments + ' comments, ' + p.metadata.subreddits.length + ' subreddits</p>';
      result.innerHTML = html;
    }
  </script>
</body>
</html>`

// IndexPage serves the analysis form.
func IndexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
