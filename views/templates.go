package views

const layoutTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} · Course Tracker</title>
  <link rel="stylesheet" href="/css/app.css">
</head>
<body>
  <nav class="navbar">
    <span class="brand">Course Tracker</span>
    {{range .Nav}}<a class="nav-link{{if .Active}} active{{end}}" href="/?view={{.View}}" data-view="{{.View}}">{{.Title}}</a>
    {{end}}
  </nav>
  <main class="container">
    {{if .Alert}}<div class="alert alert-error" role="alert">{{.Alert}}</div>{{end}}
    {{if .Notice}}<div class="alert alert-info" role="status">{{.Notice}}</div>{{end}}
    {{range .Sections}}<section id="{{.View}}View" class="view{{if not .Visible}} hidden{{end}}">{{.Body}}</section>
    {{end}}
  </main>
  {{if .Modal}}<div class="modal-backdrop">{{.Modal}}</div>{{end}}
</body>
</html>{{end}}`

const courseListTemplate = `{{define "courses"}}<div class="view-header">
  <h1 class="text-2xl font-bold">Courses</h1>
  <a class="btn-primary" id="addCourseBtn" href="/courses/new">Add course</a>
</div>
<div id="courseList">
{{range .}}  <div class="card mb-4">
    <div class="flex justify-between items-center">
      <div class="flex items-center">
        <div class="w-3 h-3 rounded-full mr-3" style="background-color: {{.Color}}"></div>
        <h3 class="text-lg font-semibold">{{.Name}}</h3>
      </div>
      <form class="flex space-x-2" method="post" action="/actions">
        <input type="hidden" name="id" value="{{.ID}}">
        <button class="btn-secondary py-1 px-2 text-sm" name="action" value="course.edit" data-action="course.edit" data-id="{{.ID}}">Edit</button>
        <button class="btn-danger py-1 px-2 text-sm" name="action" value="course.delete" data-action="course.delete" data-id="{{.ID}}">Delete</button>
      </form>
    </div>
  </div>
{{else}}  <p class="text-gray-500 text-center py-4">No courses yet</p>
{{end}}</div>{{end}}`

const taskListTemplate = `{{define "tasks"}}<div class="view-header">
  <h1 class="text-2xl font-bold">Tasks</h1>
  <a class="btn-primary" id="addTaskBtn" href="/tasks/new">Add task</a>
</div>
<div id="taskList">
{{range .}}  <div class="card mb-4{{if .Completed}} opacity-70{{end}}">
    <div class="flex flex-col md:flex-row justify-between">
      <div class="mb-3 md:mb-0">
        <h3 class="text-lg font-semibold mb-1{{if .Completed}} line-through text-gray-500{{end}}">{{.Task.Title}}</h3>
        <div class="flex items-center text-sm text-gray-600 mb-1">
          <div class="w-2 h-2 rounded-full mr-2" style="background-color: {{.CourseColor}}"></div>
          <span>{{.CourseName}}</span>
        </div>
        <div class="text-sm text-gray-500">Due: {{.Task.DueDate}}</div>
      </div>
      <form class="flex space-x-2" method="post" action="/actions">
        <input type="hidden" name="id" value="{{.Task.ID}}">
        <button class="btn-secondary py-1 px-3 text-sm" name="action" value="task.toggle" data-action="task.toggle" data-id="{{.Task.ID}}">{{if .Completed}}Mark pending{{else}}Mark done{{end}}</button>
        <button class="btn-secondary py-1 px-3 text-sm" name="action" value="task.edit" data-action="task.edit" data-id="{{.Task.ID}}">Edit</button>
        <button class="btn-danger py-1 px-3 text-sm" name="action" value="task.delete" data-action="task.delete" data-id="{{.Task.ID}}">Delete</button>
      </form>
    </div>
  </div>
{{else}}  <p class="text-gray-500 text-center py-4">No tasks yet</p>
{{end}}</div>{{end}}`

const progressTemplate = `{{define "progress"}}<div id="progressContent">
  <div class="grid grid-cols-1 md:grid-cols-2 gap-6">
    <div class="card">
      <h2 class="text-xl font-bold mb-4">Overall progress</h2>
      <div class="text-center mb-4">
        <div class="text-4xl font-bold text-blue-600">{{.Overall.Rate}}%</div>
        <div class="text-gray-600">{{.Overall.Completed}}/{{.Overall.Total}} tasks completed</div>
      </div>
      <div class="w-full bg-gray-200 rounded-full h-4">
        <div class="bg-blue-600 h-4 rounded-full" style="width: {{.Overall.Rate}}%"></div>
      </div>
    </div>
    <div class="card">
      <h2 class="text-xl font-bold mb-4">Course progress</h2>
      <div class="space-y-4">
{{range .Courses}}        <div class="course-progress">
          <div class="flex justify-between mb-1">
            <div class="flex items-center">
              <div class="w-3 h-3 rounded-full mr-2" style="background-color: {{.Color}}"></div>
              <span class="font-medium">{{.Name}}</span>
            </div>
            <span class="text-sm text-gray-600">{{.Completed}}/{{.Total}}</span>
          </div>
          <div class="w-full bg-gray-200 rounded-full h-3">
            <div class="h-3 rounded-full" style="width: {{.Rate}}%; background-color: {{.Color}}"></div>
          </div>
        </div>
{{end}}      </div>
    </div>
  </div>
  <div class="card mt-6">
    <h2 class="text-xl font-bold mb-4">Upcoming deadlines</h2>
    <div class="space-y-3" id="upcomingList">
{{range .Upcoming}}      <div class="flex items-center justify-between p-3 bg-gray-50 rounded-lg upcoming-task" data-urgency="{{.Urgency}}">
        <div class="flex items-center">
          <div class="w-3 h-3 rounded-full mr-3" style="background-color: {{.CourseColor}}"></div>
          <div>
            <div class="font-medium">{{.Task.Title}}</div>
            <div class="text-sm text-gray-500">{{.CourseName}} · {{.Task.DueDate}}</div>
          </div>
        </div>
        <span class="px-3 py-1 text-xs font-medium rounded-full {{.Urgency.Class}}">{{.Label}}</span>
      </div>
{{else}}      <p class="text-gray-500 text-center py-4">No pending tasks in the coming week</p>
{{end}}    </div>
  </div>
</div>{{end}}`

const reportsTemplate = `{{define "reports"}}<div id="reportsContent">
  <div class="card">
    <h2 class="text-xl font-bold mb-6">Task report</h2>
    <div class="grid grid-cols-1 md:grid-cols-3 gap-4 mb-6">
      <div class="bg-blue-50 p-4 rounded-lg">
        <div class="text-3xl font-bold text-blue-600" id="reportTotal">{{.Total}}</div>
        <div class="text-gray-600">Total tasks</div>
      </div>
      <div class="bg-green-50 p-4 rounded-lg">
        <div class="text-3xl font-bold text-green-600" id="reportCompleted">{{.Completed}}</div>
        <div class="text-gray-600">Completed</div>
      </div>
      <div class="bg-yellow-50 p-4 rounded-lg">
        <div class="text-3xl font-bold text-yellow-600" id="reportPending">{{.Pending}}</div>
        <div class="text-gray-600">Pending</div>
      </div>
    </div>
    <div class="mb-6">
      <h3 class="text-lg font-semibold mb-3">Completion rate</h3>
      <div class="text-center">
        <div class="text-5xl font-bold text-blue-600" id="reportRate">{{.Rate}}%</div>
      </div>
    </div>
    <h3 class="text-lg font-semibold mb-3">By course</h3>
    <table class="report-table">
      <thead><tr><th>Course</th><th>Completed</th><th>Pending</th><th>Total</th><th>Rate</th></tr></thead>
      <tbody>
{{range .Courses}}        <tr>
          <td><span class="dot" style="background-color: {{.Color}}"></span>{{.Name}}</td>
          <td class="text-green-600">{{.Completed}}</td>
          <td class="text-yellow-600">{{.Pending}}</td>
          <td>{{.Total}}</td>
          <td>{{.Rate}}%</td>
        </tr>
{{end}}      </tbody>
    </table>
    <form class="mt-8 text-center" method="post" action="/actions">
      <button id="exportReportBtn" class="btn-primary" name="action" value="report.export" data-action="report.export">Export report</button>
    </form>
  </div>
</div>{{end}}`

const courseFormTemplate = `{{define "courseForm"}}<div class="modal" id="courseModal">
  <h2 class="text-xl font-bold mb-4">{{if .ID}}Edit course{{else}}Add course{{end}}</h2>
  <form method="post" action="/courses/save">
    <input type="hidden" id="courseId" name="id" value="{{.ID}}">
    <label for="courseName">Name</label>
    <input type="text" id="courseName" name="name" value="{{.Name}}">
    <label for="courseColor">Color</label>
    <div class="color-field">
      <input type="color" id="courseColor" name="color" value="{{.Color}}">
      <input type="text" id="courseColorText" name="colorText" value="{{.Color}}" pattern="#[0-9A-Fa-f]{6}" maxlength="7">
    </div>
    <div class="modal-actions">
      <a class="btn-secondary close-modal" href="/?view=courses">Cancel</a>
      <button class="btn-primary" id="saveCourseBtn" type="submit">Save</button>
    </div>
  </form>
  <script>
    (function () {
      var picker = document.getElementById('courseColor');
      var text = document.getElementById('courseColorText');
      picker.addEventListener('input', function () { text.value = picker.value; });
      text.addEventListener('input', function () {
        if (/^#[0-9A-F]{6}$/i.test(text.value)) { picker.value = text.value; }
      });
    })();
  </script>
</div>{{end}}`

const taskFormTemplate = `{{define "taskForm"}}<div class="modal" id="taskModal">
  <h2 class="text-xl font-bold mb-4">{{if .ID}}Edit task{{else}}Add task{{end}}</h2>
  <form method="post" action="/tasks/save">
    <input type="hidden" id="taskId" name="id" value="{{.ID}}">
    <label for="taskTitle">Title</label>
    <input type="text" id="taskTitle" name="title" value="{{.Title}}">
    <label for="taskCourseId">Course</label>
    <select id="taskCourseId" name="courseId">
      <option value="" disabled{{if not .CourseID}} selected="selected"{{end}}>Select a course</option>
{{range .Courses}}      <option value="{{.ID}}"{{if eq .ID $.CourseID}} selected="selected"{{end}}>{{.Name}}</option>
{{end}}    </select>
    <label for="taskDueDate">Due date</label>
    <input type="date" id="taskDueDate" name="dueDate" value="{{.DueDate}}">
    <div class="modal-actions">
      <a class="btn-secondary close-modal" href="/?view=tasks">Cancel</a>
      <button class="btn-primary" id="saveTaskBtn" type="submit">Save</button>
    </div>
  </form>
</div>{{end}}`

const confirmTemplate = `{{define "confirm"}}<div class="modal" id="confirmModal">
  <p class="mb-4">{{.Message}}</p>
  <form method="post" action="/actions">
    <input type="hidden" name="action" value="{{.Action}}">
    <input type="hidden" name="id" value="{{.ID}}">
    <input type="hidden" name="confirm" value="yes">
    <div class="modal-actions">
      <a class="btn-secondary close-modal" href="/?view={{.Back}}">Cancel</a>
      <button class="btn-danger" type="submit">Delete</button>
    </div>
  </form>
</div>{{end}}`
