package server

import (
	"html/template"
	"net/http"
)

// The editor page is deliberately plain: the browser is only a
// playback and input surface, all state lives server-side. Styling is
// utilitarian; layout is not a product concern here.
var editorPageTemplate = template.Must(template.New("editor").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Video Captioning</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            background: #0f172a;
            color: #e2e8f0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            min-height: 100vh;
            display: flex;
            flex-direction: column;
            align-items: center;
        }
        .container { max-width: 960px; width: 100%; padding: 2rem 1rem; }
        h1 { font-size: 1.5rem; font-weight: 600; margin-bottom: 1rem; }
        .player-wrap { position: relative; background: #000; border-radius: 8px; }
        video { width: 100%; border-radius: 8px; background: #000; display: block; }
        .caption-overlay {
            position: absolute;
            left: 0; right: 0; bottom: 8%;
            text-align: center;
            pointer-events: none;
        }
        .caption-overlay span {
            display: inline-block;
            background: rgba(0, 0, 0, 0.75);
            color: #fff;
            padding: 0.2rem 0.6rem;
            border-radius: 4px;
            font-size: 1.25rem;
            margin-top: 0.25rem;
            white-space: pre-wrap;
        }
        .row { display: flex; gap: 0.5rem; margin-top: 1rem; flex-wrap: wrap; }
        input[type=text], input[type=number] {
            background: #1e293b;
            border: 1px solid #334155;
            color: #e2e8f0;
            border-radius: 4px;
            padding: 0.5rem;
        }
        input.grow { flex: 1; }
        input.time { width: 7rem; }
        button {
            background: #334155;
            border: none;
            color: #e2e8f0;
            border-radius: 4px;
            padding: 0.5rem 0.9rem;
            cursor: pointer;
        }
        button:hover { background: #475569; }
        button.primary { background: #2563eb; }
        button.primary:hover { background: #1d4ed8; }
        table { width: 100%; margin-top: 1rem; border-collapse: collapse; }
        th, td { text-align: left; padding: 0.4rem 0.5rem; border-bottom: 1px solid #1e293b; }
        th { color: #94a3b8; font-weight: 500; font-size: 0.875rem; }
        tr.editing { background: #1e293b; }
        td.actions { text-align: right; white-space: nowrap; }
        td.actions button { padding: 0.25rem 0.6rem; margin-left: 0.25rem; font-size: 0.8rem; }
        #notice {
            display: none;
            margin-top: 1rem;
            padding: 0.6rem 0.9rem;
            border-radius: 4px;
            background: #7f1d1d;
            color: #fecaca;
        }
        #notice.visible { display: block; }
    </style>
</head>
<body>
<div class="container">
    <h1>Video Captioning</h1>

    <div class="row">
        <input type="text" class="grow" id="video-url" placeholder="Video URL">
        <button id="load-video">Load</button>
    </div>

    <div class="player-wrap" style="margin-top: 1rem;">
        <video id="player" controls></video>
        <div class="caption-overlay" id="caption-overlay"></div>
    </div>

    <div id="notice"></div>

    <div class="row">
        <input type="text" class="grow" id="draft-text" placeholder="Caption text">
        <input type="number" class="time" id="draft-start" placeholder="Start (s)" min="0" step="0.1">
        <input type="number" class="time" id="draft-end" placeholder="End (s)" min="0" step="0.1">
        <button class="primary" id="commit">Add</button>
    </div>

    <div class="row">
        <button id="export">Export JSON</button>
        <button id="import">Import JSON</button>
        <input type="file" id="import-file" accept="application/json" style="display: none;">
    </div>

    <table>
        <thead>
        <tr><th>#</th><th>Text</th><th>Start</th><th>End</th><th></th></tr>
        </thead>
        <tbody id="caption-rows"></tbody>
    </table>
</div>

<script>
(function() {
    var player = document.getElementById('player');
    var overlay = document.getElementById('caption-overlay');
    var rows = document.getElementById('caption-rows');
    var notice = document.getElementById('notice');
    var commitBtn = document.getElementById('commit');
    var state = null;

    function api(method, path, body) {
        return fetch(path, {
            method: method,
            headers: body !== undefined ? { 'Content-Type': 'application/json' } : {},
            body: body !== undefined ? JSON.stringify(body) : undefined
        }).then(function(r) {
            return r.json().then(function(data) {
                if (!r.ok) throw new Error(data.error || 'request failed');
                return data;
            });
        });
    }

    function showError(msg) {
        notice.textContent = msg;
        notice.classList.add('visible');
        setTimeout(function() { notice.classList.remove('visible'); }, 4000);
    }

    function render(next) {
        state = next;
        document.getElementById('draft-text').value = state.draft.text;
        document.getElementById('draft-start').value = state.draft.start;
        document.getElementById('draft-end').value = state.draft.end;
        commitBtn.textContent = state.editingId ? 'Update' : 'Add';

        if (state.videoUrl && player.getAttribute('src') !== state.videoUrl) {
            player.setAttribute('src', state.videoUrl);
            document.getElementById('video-url').value = state.videoUrl;
        }

        rows.innerHTML = '';
        state.captions.forEach(function(c, i) {
            var tr = document.createElement('tr');
            if (c.id === state.editingId) tr.className = 'editing';

            var cells = [String(i + 1), c.text, c.start.toFixed(2), c.end.toFixed(2)];
            cells.forEach(function(v) {
                var td = document.createElement('td');
                td.textContent = v;
                tr.appendChild(td);
            });

            var actions = document.createElement('td');
            actions.className = 'actions';
            [['Seek', function() { seekTo(c.start); }],
             ['Edit', function() { post('/api/captions/' + c.id + '/edit'); }],
             ['Delete', function() { del('/api/captions/' + c.id); }]
            ].forEach(function(pair) {
                var btn = document.createElement('button');
                btn.textContent = pair[0];
                btn.addEventListener('click', pair[1]);
                actions.appendChild(btn);
            });
            tr.appendChild(actions);
            rows.appendChild(tr);
        });
    }

    function post(path, body) {
        api('POST', path, body || {}).then(render).catch(function(e) { showError(e.message); });
    }
    function del(path) {
        api('DELETE', path).then(render).catch(function(e) { showError(e.message); });
    }

    function seekTo(t) {
        api('POST', '/api/playback/seek', { time: t }).catch(function(e) { showError(e.message); });
    }

    function renderOverlay(visible) {
        overlay.innerHTML = '';
        visible.forEach(function(c) {
            var span = document.createElement('span');
            span.textContent = c.text;
            overlay.appendChild(span);
            overlay.appendChild(document.createElement('br'));
        });
    }

    // playback bridge, browser side: report the current time upstream,
    // render whatever the server says is visible
    player.addEventListener('timeupdate', function() {
        api('POST', '/api/playback/time', { time: player.currentTime })
            .then(renderOverlay)
            .catch(function() {});
    });

    // pick up pending seeks
    setInterval(function() {
        api('GET', '/api/playback/').then(function(p) {
            if (p.seek !== null && p.seek !== undefined) {
                player.currentTime = p.seek;
                player.play().catch(function() {});
            }
        }).catch(function() {});
    }, 500);

    document.getElementById('load-video').addEventListener('click', function() {
        post('/api/video', { url: document.getElementById('video-url').value });
    });

    ['text', 'start', 'end'].forEach(function(field) {
        document.getElementById('draft-' + field).addEventListener('change', function(e) {
            var body = {};
            body[field] = e.target.value;
            post('/api/draft', body);
        });
    });

    commitBtn.addEventListener('click', function() {
        var body = {
            text: document.getElementById('draft-text').value,
            start: document.getElementById('draft-start').value,
            end: document.getElementById('draft-end').value
        };
        api('POST', '/api/draft', body).then(function() {
            post('/api/captions/commit');
        }).catch(function(e) { showError(e.message); });
    });

    document.getElementById('export').addEventListener('click', function() {
        window.location.href = '/api/captions/export';
    });

    var fileInput = document.getElementById('import-file');
    document.getElementById('import').addEventListener('click', function() {
        fileInput.click();
    });
    fileInput.addEventListener('change', function() {
        if (!fileInput.files.length) return;
        fileInput.files[0].text().then(function(content) {
            return fetch('/api/captions/import', { method: 'POST', body: content })
                .then(function(r) {
                    return r.json().then(function(data) {
                        if (!r.ok) throw new Error(data.error || 'import failed');
                        render(data);
                    });
                });
        }).catch(function(e) { showError(e.message); });
        fileInput.value = '';
    });

    api('GET', '/api/state').then(render).catch(function(e) { showError(e.message); });
})();
</script>
</body>
</html>
`))

func (s *Server) handleEditorPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := editorPageTemplate.Execute(w, nil); err != nil {
		s.logger.Errorw("Failed to render editor page", "error", err)
	}
}
