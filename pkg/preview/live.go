package preview

// liveScript replaces the root's content with each render pushed on /live.
const liveScript = `
(function() {
    'use strict';
    var delay = 1000;
    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/live');
        ws.onopen = function() { delay = 1000; };
        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            var root = document.getElementById('` + rootID + `');
            if (msg.type === 'render') {
                root.innerHTML = msg.html;
            } else if (msg.type === 'error') {
                console.error('[velem]', msg.error);
            }
        };
        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, 30000);
                connect();
            }, delay);
        };
    }
    connect();
})();
`
